package ports

import (
    "context"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/query"
)

// StatsReader counts rows related to the factory set a filter selects.
// All methods are read-only.
type StatsReader interface {
    CountFactories(ctx context.Context, f query.Filter) (int, error)
    // CountLatestDocuments counts one latest document per factory in scope.
    CountLatestDocuments(ctx context.Context, f query.Filter) (int, error)
    // CountReportRecords counts every report row; CountReportedFactories
    // counts each reported factory once.
    CountReportRecords(ctx context.Context, f query.Filter) (int, error)
    CountReportedFactories(ctx context.Context, f query.Filter) (int, error)
    CountImages(ctx context.Context, f query.Filter) (int, error)
    // CountLatestStatuses groups factories in scope by their latest document's status.
    CountLatestStatuses(ctx context.Context, f query.Filter) (map[domain.DisplayStatus]int, error)
}

// StatsRepository runs fn against a consistent read-only view of the store.
type StatsRepository interface {
    ReadSnapshot(ctx context.Context, fn func(StatsReader) error) error
}
