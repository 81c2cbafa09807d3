package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open opens the database for the given driver and DSN and applies the schema.
// For sqlite the DSN is a file path; missing parent directories are created.
func Open(ctx context.Context, driver string, dsn string) (*sql.DB, Dialect, error) {
	d, err := ParseDialect(driver)
	if err != nil {
		return nil, "", err
	}
	if d == DialectSQLite && dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, "", fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	if d == DialectMySQL {
		// updated_at is scanned into time.Time.
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		dsn = cfg.FormatDSN()
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", d, err)
	}
	if d == DialectSQLite {
		// A single connection keeps ":memory:" databases alive and serializes writers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", d, err)
	}
	if err := Migrate(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, "", err
	}
	return db, d, nil
}
