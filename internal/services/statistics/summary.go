package statistics

import (
    "context"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/query"
    "github.com/pm5/Disfactory/internal/workers/cityrunner"
)

// Summary classifies the latest document of every factory, city by city.
// Unlike Rollup, ReportRecords here counts reported factories, not reports.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
    cities := s.lookup.Cities()
    out := make(domain.Summary, len(cities))
    err := cityrunner.Run(ctx, s.workers, len(cities), func(ctx context.Context, i int) error {
        row, err := s.summarize(ctx, cities[i])
        if err != nil {
            return err
        }
        out[i] = row
        return nil
    })
    if err != nil {
        return nil, err
    }
    return out, nil
}

func (s *Service) summarize(ctx context.Context, city string) (domain.CitySummary, error) {
    f := query.New(city, "", nil)
    row := domain.CitySummary{City: city}
    err := s.repo.ReadSnapshot(ctx, func(r ports.StatsReader) error {
        var err error
        if row.Factories, err = r.CountFactories(ctx, f); err != nil {
            return err
        }
        if row.ReportRecords, err = r.CountReportedFactories(ctx, f); err != nil {
            return err
        }
        if row.Documents, err = r.CountLatestDocuments(ctx, f); err != nil {
            return err
        }
        statuses, err := r.CountLatestStatuses(ctx, f)
        if err != nil {
            return err
        }
        for st, n := range statuses {
            if b, ok := domain.BucketOf(st); ok {
                row.Buckets[b] += n
            }
        }
        return nil
    })
    s.observe("summary", f, err)
    return row, err
}
