package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgQuerier struct {
	pool *pgxpool.Pool
}

func (p pgQuerier) query(ctx context.Context, sql string) (rowIterator, error) {
	return p.pool.Query(ctx, sql)
}

func (p pgQuerier) close() {
	p.pool.Close()
}

// NewPostgresSource connects to a PostgreSQL database holding the Chinook schema
func NewPostgresSource(ctx context.Context, cfg PostgresConfig) (Source, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &source{q: pgQuerier{pool: pool}}, nil
}
