package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
)

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	// List returns every player in registration order.
	List(ctx context.Context, exec SQLExecutor) ([]*models.Player, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlPlayerRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewPlayerRepository(conn *sql.DB, dialect db.Dialect) PlayerRepository {
	return &sqlPlayerRepository{db: conn, dialect: dialect}
}

func (r *sqlPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	executor := r.getExecutor(exec)
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	query := r.dialect.Rebind(`
		INSERT INTO players (name, created_at)
		VALUES ($1, $2)
		RETURNING id`)
	if err := executor.QueryRowContext(ctx, query, player.Name, player.CreatedAt).Scan(&player.ID); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *sqlPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	executor := r.getExecutor(exec)
	var count int
	if err := executor.QueryRowContext(ctx, `SELECT COUNT(id) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func (r *sqlPlayerRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Player, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, name, created_at FROM players ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

// DeleteAll removes every player. Matches must be removed first.
func (r *sqlPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `DELETE FROM players`)
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}
	return rowsAffected(result)
}
