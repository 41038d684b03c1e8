// Package query plans the factory set selected by a statistics request.
//
// A Filter is the conjunction of two independent clauses: a status clause,
// evaluated against each factory's latest document across all factories, and
// a region/source predicate on the factory row itself.
package query

import (
    "strings"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/regions"
)

// Filter is immutable; the With* methods return modified copies.
type Filter struct {
    region    string
    source    domain.Source
    status    domain.StatusLabel
    hasStatus bool
}

// New builds a filter. region must already be normalized; "" and source ""
// mean unconstrained.
func New(region string, source domain.Source, status *domain.StatusLabel) Filter {
    f := Filter{region: region, source: source}
    if status != nil {
        f.status, f.hasStatus = *status, true
    }
    return f
}

func (f Filter) Region() string        { return f.region }
func (f Filter) Source() domain.Source { return f.source }

// Status returns the status clause, if any.
func (f Filter) Status() (domain.StatusLabel, bool) { return f.status, f.hasStatus }

func (f Filter) HasStatus() bool { return f.hasStatus }

// WithRegion narrows (or widens) the region clause, keeping source and status.
func (f Filter) WithRegion(region string) Filter {
    f.region = region
    return f
}

// RegionPrefixes are the townname prefixes accepted by the region clause:
// the bare region and its legacy province-prefixed form. Nil when
// unconstrained. Stored rows carry at most the 臺灣省 prefix; the normalizer
// also strips 福建省, but only from query input, so a stored 福建省 row never
// matches.
func (f Filter) RegionPrefixes() []string {
    if f.region == "" {
        return nil
    }
    return []string{f.region, regions.LegacyProvincePrefix + f.region}
}

// MatchesFactory evaluates the region/source predicate on one factory row.
func (f Filter) MatchesFactory(fac domain.Factory) bool {
    if f.source != "" && fac.Source != f.source {
        return false
    }
    if f.region == "" {
        return true
    }
    for _, p := range f.RegionPrefixes() {
        if strings.HasPrefix(fac.Townname, p) {
            return true
        }
    }
    return false
}
