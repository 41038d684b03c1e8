package statistics

import (
    "context"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/logger"
    "github.com/pm5/Disfactory/internal/metrics"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/query"
)

// aggregate computes the rollup of the factory set f selects. All counts come
// from one snapshot.
func (s *Service) aggregate(ctx context.Context, level domain.Level, f query.Filter) (domain.Counts, error) {
    var c domain.Counts
    err := s.repo.ReadSnapshot(ctx, func(r ports.StatsReader) error {
        var err error
        if c.Factories, err = r.CountFactories(ctx, f); err != nil {
            return err
        }
        // every factory selected by status has exactly one qualifying latest document
        if f.HasStatus() {
            c.Documents = c.Factories
        } else if c.Documents, err = r.CountLatestDocuments(ctx, f); err != nil {
            return err
        }
        c.ReportRecords, err = r.CountReportRecords(ctx, f)
        return err
    })
    s.observe(levelLabel(level), f, err)
    return c, err
}

// counter is a StatsReader method expression, e.g. ports.StatsReader.CountImages.
type counter func(ports.StatsReader, context.Context, query.Filter) (int, error)

// count runs a single counter in its own snapshot.
func (s *Service) count(ctx context.Context, op string, f query.Filter, fn counter) (int, error) {
    var n int
    err := s.repo.ReadSnapshot(ctx, func(r ports.StatsReader) error {
        var err error
        n, err = fn(r, ctx, f)
        return err
    })
    s.observe(op, f, err)
    return n, err
}

func (s *Service) observe(op string, f query.Filter, err error) {
    metrics.ObserveJob(op, err)
    if err != nil {
        metrics.StoreErrorsTotal.WithLabelValues(op).Inc()
        s.log.Error("statistics query failed",
            logger.String("op", op),
            logger.String("region", f.Region()),
            logger.Error(err),
        )
    }
}

func levelLabel(l domain.Level) string {
    if l == domain.LevelNone {
        return "nationwide"
    }
    return l.String()
}
