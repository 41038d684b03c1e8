package ports

import (
    "context"

    "github.com/pm5/Disfactory/internal/domain"
)

// Params are the raw statistics query parameters. Empty means absent.
type Params struct {
    Townname      string
    Source        string
    DisplayStatus string
    Level         string
}

// Statistics serves the regional statistics reports.
type Statistics interface {
    Rollup(ctx context.Context, p Params) (domain.Breakdown, error)
    // PhotoCount and ReportRecordCount ignore p.Level.
    PhotoCount(ctx context.Context, p Params) (int, error)
    ReportRecordCount(ctx context.Context, p Params) (int, error)
    Summary(ctx context.Context) (domain.Summary, error)
}

// Pinger reports store reachability.
type Pinger interface {
    Ping(ctx context.Context) error
}
