package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	var stmts []string
	switch d {
	case DialectMySQL:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS local_storage (
				entry_key VARCHAR(191) NOT NULL PRIMARY KEY,
				entry_value LONGTEXT NOT NULL,
				updated_at DATETIME(3) NOT NULL
			);`,
		}
	case DialectPostgres:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS local_storage (
				entry_key TEXT PRIMARY KEY,
				entry_value TEXT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			);`,
		}
	default:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS local_storage (
				entry_key TEXT PRIMARY KEY,
				entry_value TEXT NOT NULL,
				updated_at DATETIME NOT NULL
			);`,
		}
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
