package statistics

import (
    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/query"
    "github.com/pm5/Disfactory/internal/regions"
)

// request is a validated set of query parameters.
type request struct {
    city   string
    town   string
    filter query.Filter
}

// parse validates p without touching the store. Level is left to the caller
// since only the rollup accepts it.
func (s *Service) parse(p ports.Params) (request, error) {
    source, err := domain.ParseSource(p.Source)
    if err != nil {
        return request{}, err
    }
    var status *domain.StatusLabel
    if p.DisplayStatus != "" {
        l, err := domain.ParseStatusLabel(p.DisplayStatus)
        if err != nil {
            return request{}, err
        }
        status = &l
    }

    region := s.normalizer.Normalize(p.Townname)
    city, town := regions.Split(region)
    if region != "" && !s.lookup.HasCity(city) {
        return request{}, &domain.ValidationError{
            Kind:     domain.ErrInvalidCity,
            Field:    "townname",
            Value:    p.Townname,
            Accepted: s.lookup.Cities(),
        }
    }
    return request{city: city, town: town, filter: query.New(region, source, status)}, nil
}

// cities is the city scope of a breakdown: the requested city or all of them.
func (r request) cities(l *regions.Lookup) []string {
    if r.city != "" {
        return []string{r.city}
    }
    return l.Cities()
}

// towns is the township scope of a city: the requested township or every
// township of the city.
func (r request) towns(l *regions.Lookup, city string) []string {
    if r.town != "" {
        return []string{r.town}
    }
    return l.Towns(city)
}
