package postgres

import (
    "context"

    "github.com/jackc/pgx/v5"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/query"
)

type querier interface {
    QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
    Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// reader implements ports.StatsReader on a transaction or the pool.
type reader struct {
    q querier
}

func (r reader) count(ctx context.Context, op string, p query.Plan) (int, error) {
    var n int64
    if err := r.q.QueryRow(ctx, p.SQL, p.Args...).Scan(&n); err != nil {
        return 0, unavailable(op, err)
    }
    return int(n), nil
}

func (r reader) CountFactories(ctx context.Context, f query.Filter) (int, error) {
    return r.count(ctx, "count factories", query.CountFactories(f))
}

func (r reader) CountLatestDocuments(ctx context.Context, f query.Filter) (int, error) {
    return r.count(ctx, "count documents", query.CountLatestDocuments(f))
}

func (r reader) CountReportRecords(ctx context.Context, f query.Filter) (int, error) {
    return r.count(ctx, "count report records", query.CountReportRecords(f))
}

func (r reader) CountReportedFactories(ctx context.Context, f query.Filter) (int, error) {
    return r.count(ctx, "count reported factories", query.CountReportedFactories(f))
}

func (r reader) CountImages(ctx context.Context, f query.Filter) (int, error) {
    return r.count(ctx, "count images", query.CountImages(f))
}

func (r reader) CountLatestStatuses(ctx context.Context, f query.Filter) (map[domain.DisplayStatus]int, error) {
    p := query.LatestStatusCounts(f)
    rows, err := r.q.Query(ctx, p.SQL, p.Args...)
    if err != nil {
        return nil, unavailable("count latest statuses", err)
    }
    defer rows.Close()

    out := make(map[domain.DisplayStatus]int)
    for rows.Next() {
        var code int16
        var n int64
        if err := rows.Scan(&code, &n); err != nil {
            return nil, unavailable("scan latest statuses", err)
        }
        // codes outside the taxonomy are kept; BucketOf ignores them
        out[domain.DisplayStatus(code)] += int(n)
    }
    if err := rows.Err(); err != nil {
        return nil, unavailable("count latest statuses", err)
    }
    return out, nil
}
