package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/repositories"
)

// runInTx runs fn inside one transaction and always hands the connection back
// to the pool: commit on success, rollback on error or panic.
func runInTx(ctx context.Context, conn *sql.DB, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", ctxErr)
		}
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrStoreUnavailable, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = storeError("failed to commit transaction", cErr)
		}
	}()

	return fn(tx)
}

// storeError wraps a repository error, tagging connection failures with
// ErrStoreUnavailable.
func storeError(op string, err error) error {
	if repositories.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
