package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// KV stores session records in a single key/value table.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV { return &KV{db: db} }

// Migrate creates the table if it does not exist.
func (r *KV) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createKVTableSQL)
	return err
}

func (r *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, getKVSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, upsertKVSQL, key, value)
	return err
}

func (r *KV) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, deleteKVSQL, key)
	return err
}
