// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/zamgas/zamgas-client/internal/ports"
)

// PostgresStorage keeps session keys in a table scoped by namespace, so several
// headless clients can share one database.
type PostgresStorage struct {
	db        *sql.DB
	namespace string
}

func NewPostgresStorage(db *sql.DB, namespace string) ports.StoragePort {
	if namespace == "" {
		namespace = "default"
	}
	return &PostgresStorage{db: db, namespace: namespace}
}

// Migrate creates the storage table.
func Migrate(ctx context.Context, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS client_storage (
			namespace VARCHAR(255) NOT NULL,
			item_key VARCHAR(255) NOT NULL,
			item_value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (namespace, item_key)
		)`,
	}
	for _, q := range queries {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate client_storage: %w", err)
		}
	}
	return nil
}

func (r *PostgresStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT item_value FROM client_storage WHERE namespace = $1 AND item_key = $2",
		r.namespace, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *PostgresStorage) SetItems(ctx context.Context, items map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO client_storage (namespace, item_key, item_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, item_key) DO UPDATE SET item_value = EXCLUDED.item_value, updated_at = NOW()
	`
	for k, v := range items {
		if _, err := tx.ExecContext(ctx, query, r.namespace, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresStorage) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM client_storage WHERE namespace = $1 AND item_key = ANY($2)",
		r.namespace, pq.Array(keys))
	return err
}
