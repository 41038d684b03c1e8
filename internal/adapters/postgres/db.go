package postgres

import (
    "context"
    "fmt"
    "time"

    "github.com/jackc/pgx/v5/pgxpool"

    "github.com/pm5/Disfactory/internal/domain"
)

type DB struct {
    Pool *pgxpool.Pool
}

func Connect(ctx context.Context, url string, maxConns int32) (*DB, error) {
    cfg, err := pgxpool.ParseConfig(url)
    if err != nil {
        return nil, err
    }
    if maxConns > 0 {
        cfg.MaxConns = maxConns
    }
    cfg.HealthCheckPeriod = 30 * time.Second
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil {
        return nil, err
    }
    if err := pool.Ping(ctx); err != nil {
        pool.Close()
        return nil, err
    }
    return &DB{Pool: pool}, nil
}

func (db *DB) Close() { db.Pool.Close() }

func (db *DB) Ping(ctx context.Context) error {
    if err := db.Pool.Ping(ctx); err != nil {
        return unavailable("ping", err)
    }
    return nil
}

// unavailable marks a driver error as a data store failure.
func unavailable(op string, err error) error {
    return fmt.Errorf("%w: %s: %w", domain.ErrDataStoreUnavailable, op, err)
}
