package postgres

import (
    "context"

    "github.com/jackc/pgx/v5"

    "github.com/pm5/Disfactory/internal/ports"
)

var snapshotOptions = pgx.TxOptions{
    IsoLevel:   pgx.RepeatableRead,
    AccessMode: pgx.ReadOnly,
}

// ReadSnapshot runs fn inside a read-only repeatable-read transaction so every
// count it issues sees the same data. The transaction is always rolled back.
func (db *DB) ReadSnapshot(ctx context.Context, fn func(ports.StatsReader) error) error {
    tx, err := db.Pool.BeginTx(ctx, snapshotOptions)
    if err != nil {
        return unavailable("begin snapshot", err)
    }
    defer func() { _ = tx.Rollback(ctx) }()
    return fn(reader{q: tx})
}
