package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tourease/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS collections (
    name       text PRIMARY KEY,
    data       jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
);`

// PostgresStore keeps each collection as one jsonb document, preserving the
// replace-whole-collection contract while making it durable.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg config.DBConfig) (*PostgresStore, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to create collections table: %w", err)
	}

	cleanup := func() { pool.Close() }
	return &PostgresStore{pool: pool}, cleanup, nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context, name string, dest any) error {
	var data []byte
	err := s.pool.QueryRow(ctx, "SELECT data FROM collections WHERE name = $1", name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to load collection %q: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", name, err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", name, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO collections (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data)
	if err != nil {
		return fmt.Errorf("failed to save collection %q: %w", name, err)
	}
	return nil
}
