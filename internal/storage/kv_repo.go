package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KVRepo is a durable string key/value store with whole-value overwrites.
type KVRepo struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewKVRepo(db *sql.DB, d Dialect) *KVRepo {
	return &KVRepo{db: db, dialect: d, now: time.Now}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	e, err := r.GetEntry(ctx, key)
	if err != nil || e == nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (r *KVRepo) GetEntry(ctx context.Context, key string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT entry_key, entry_value, updated_at
		FROM local_storage
		WHERE entry_key = ?
	`), key)
	var e Entry
	if err := row.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return &e, nil
}

// Put replaces any prior value under key.
func (r *KVRepo) Put(ctx context.Context, key string, value string) error {
	updatedAt := r.now().UTC()
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM local_storage WHERE entry_key = ?`), key); err != nil {
			return fmt.Errorf("kv clear: %w", err)
		}
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(`
			INSERT INTO local_storage (entry_key, entry_value, updated_at)
			VALUES (?, ?, ?)
		`), key, value, updatedAt); err != nil {
			return fmt.Errorf("kv put: %w", err)
		}
		return nil
	})
}
