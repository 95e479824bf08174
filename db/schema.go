package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ApplySchema creates the players and matches tables when they are missing.
func ApplySchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	file := "schema/sqlite.sql"
	if dialect.IsPostgres() {
		file = "schema/postgres.sql"
	}
	content, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", file, err)
	}

	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
