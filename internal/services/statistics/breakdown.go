package statistics

import (
    "context"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/workers/cityrunner"
)

// job is one region aggregation of a breakdown. out points into the result
// tree, which is fully allocated before any job runs.
type job struct {
    level  domain.Level
    region string
    out    *domain.Counts
}

// Rollup computes the nationwide rollup and, when p.Level asks for it, the
// rollups of the cities and townships in scope. The nationwide node ignores
// the region but keeps the source and status clauses.
func (s *Service) Rollup(ctx context.Context, p ports.Params) (domain.Breakdown, error) {
    req, err := s.parse(p)
    if err != nil {
        return domain.Breakdown{}, err
    }
    level, err := domain.ParseLevel(p.Level)
    if err != nil {
        return domain.Breakdown{}, err
    }

    var out domain.Breakdown
    if out.Counts, err = s.aggregate(ctx, domain.LevelNone, req.filter.WithRegion("")); err != nil {
        return domain.Breakdown{}, err
    }
    if level == domain.LevelNone {
        return out, nil
    }

    cities := req.cities(s.lookup)
    out.Cities = make(domain.Regions, len(cities))
    var jobs []job
    for i, city := range cities {
        node := &out.Cities[i]
        node.Name = city
        jobs = append(jobs, job{level: domain.LevelCity, region: city, out: &node.Counts})
        if level != domain.LevelTown {
            continue
        }
        towns := req.towns(s.lookup, city)
        node.Towns = make(domain.Regions, len(towns))
        for j, town := range towns {
            t := &node.Towns[j]
            t.Name = town
            jobs = append(jobs, job{level: domain.LevelTown, region: city + town, out: &t.Counts})
        }
    }

    err = cityrunner.Run(ctx, s.workers, len(jobs), func(ctx context.Context, i int) error {
        c, err := s.aggregate(ctx, jobs[i].level, req.filter.WithRegion(jobs[i].region))
        if err != nil {
            return err
        }
        *jobs[i].out = c
        return nil
    })
    if err != nil {
        return domain.Breakdown{}, err
    }
    return out, nil
}
