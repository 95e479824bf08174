package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/lib/pq"              // registers the "postgres" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// ErrUnavailable is returned when the store cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// Dialect identifies the SQL flavour behind a *sql.DB.
type Dialect string

const (
	Postgres Dialect = "postgres"
	Pgx      Dialect = "pgx"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps a DB_DRIVER value to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(driver)); d {
	case Postgres, Pgx, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// IsPostgres reports whether the dialect talks to PostgreSQL, whatever the driver.
func (d Dialect) IsPostgres() bool {
	return d == Postgres || d == Pgx
}

// Rebind rewrites $N placeholders into the dialect's positional form.
// SQLite accepts ?N with the same numbering.
func (d Dialect) Rebind(query string) string {
	if d != SQLite {
		return query
	}
	return strings.ReplaceAll(query, "$", "?")
}

// SnapshotTxOptions returns the options for a transaction that reads a consistent
// snapshot across several statements.
func (d Dialect) SnapshotTxOptions() *sql.TxOptions {
	if d.IsPostgres() {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	// SQLite transactions are serializable already.
	return nil
}

// Connect opens a pooled handle and verifies it within timeout.
func Connect(dialect Dialect, dsn string, timeout time.Duration, maxOpenConns int) (*sql.DB, error) {
	if dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	if maxOpenConns <= 0 {
		maxOpenConns = 25
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database within %v: %w", ErrUnavailable, timeout, err)
	}

	return db, nil
}

// sqliteDSN turns on foreign keys and a busy timeout for every pooled connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
