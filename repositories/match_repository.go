package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
)

var (
	ErrMatchPlayerInvalid = errors.New("match references an unregistered player")
	ErrMatchSamePlayer    = errors.New("match winner and loser are the same player")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	// List returns every match in the order it was reported.
	List(ctx context.Context, exec SQLExecutor) ([]*models.Match, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlMatchRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewMatchRepository(conn *sql.DB, dialect db.Dialect) MatchRepository {
	return &sqlMatchRepository{db: conn, dialect: dialect}
}

func (r *sqlMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	executor := r.getExecutor(exec)
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}
	query := r.dialect.Rebind(`
		INSERT INTO matches (winner_id, loser_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`)
	err := executor.QueryRowContext(ctx, query, match.WinnerID, match.LoserID, match.CreatedAt).Scan(&match.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: winner %d, loser %d", ErrMatchPlayerInvalid, match.WinnerID, match.LoserID)
		case isCheckViolation(err):
			return fmt.Errorf("%w: player %d", ErrMatchSamePlayer, match.WinnerID)
		}
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *sqlMatchRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	executor := r.getExecutor(exec)
	var count int
	if err := executor.QueryRowContext(ctx, `SELECT COUNT(id) FROM matches`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

func (r *sqlMatchRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Match, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, winner_id, loser_id, created_at FROM matches ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `DELETE FROM matches`)
	if err != nil {
		return 0, fmt.Errorf("delete matches: %w", err)
	}
	return rowsAffected(result)
}
