// Package statistics serves the regional factory statistics: the nested
// factory/document/report rollup, the photo and report counts, and the
// nationwide status summary.
package statistics

import (
    "github.com/pm5/Disfactory/internal/logger"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/regions"
)

type Service struct {
    repo       ports.StatsRepository
    lookup     *regions.Lookup
    normalizer *regions.Normalizer
    workers    int
    log        logger.Logger
}

type Option func(*Service)

// WithWorkers bounds how many region aggregations run at once.
func WithWorkers(n int) Option {
    return func(s *Service) {
        if n > 0 {
            s.workers = n
        }
    }
}

func WithLogger(l logger.Logger) Option {
    return func(s *Service) { s.log = l }
}

func New(repo ports.StatsRepository, lookup *regions.Lookup, opts ...Option) *Service {
    s := &Service{
        repo:       repo,
        lookup:     lookup,
        normalizer: regions.NewNormalizer(lookup),
        workers:    4,
        log:        logger.NewNop(),
    }
    for _, o := range opts {
        o(s)
    }
    return s
}

var _ ports.Statistics = (*Service)(nil)
