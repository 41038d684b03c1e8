// Package memory is an in-process implementation of the statistics read
// ports. It evaluates the same filter semantics as the postgres adapter over
// plain slices.
package memory

import (
    "context"
    "sync"

    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/query"
)

type Store struct {
    mu            sync.RWMutex
    factories     []domain.Factory
    documents     []domain.Document
    reportRecords []domain.ReportRecord
    images        []domain.Image

    // Err, when set, is returned by every read.
    Err error
}

func New() *Store { return &Store{} }

func (s *Store) AddFactories(f ...domain.Factory) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.factories = append(s.factories, f...)
}

func (s *Store) AddDocuments(d ...domain.Document) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.documents = append(s.documents, d...)
}

func (s *Store) AddReportRecords(r ...domain.ReportRecord) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.reportRecords = append(s.reportRecords, r...)
}

func (s *Store) AddImages(i ...domain.Image) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.images = append(s.images, i...)
}

func (s *Store) Ping(ctx context.Context) error { return s.Err }

// ReadSnapshot holds the read lock for the duration of fn.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(ports.StatsReader) error) error {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.Err != nil {
        return s.Err
    }
    return fn(snapshot{s})
}

type snapshot struct {
    s *Store
}

// latest returns the latest document per factory: newest CreatedAt, ties
// broken by the greater ID.
func (v snapshot) latest() map[string]domain.Document {
    out := make(map[string]domain.Document)
    for _, d := range v.s.documents {
        cur, ok := out[d.FactoryID]
        if !ok || d.CreatedAt.After(cur.CreatedAt) || (d.CreatedAt.Equal(cur.CreatedAt) && d.ID > cur.ID) {
            out[d.FactoryID] = d
        }
    }
    return out
}

// scope is the factory id set selected by f.
func (v snapshot) scope(f query.Filter) map[string]struct{} {
    label, hasStatus := f.Status()
    var latest map[string]domain.Document
    if hasStatus {
        latest = v.latest()
    }
    out := make(map[string]struct{})
    for _, fac := range v.s.factories {
        if hasStatus {
            d, ok := latest[fac.ID]
            if !ok || !label.Matches(d.DisplayStatus) {
                continue
            }
        }
        if f.MatchesFactory(fac) {
            out[fac.ID] = struct{}{}
        }
    }
    return out
}

func (v snapshot) CountFactories(ctx context.Context, f query.Filter) (int, error) {
    return len(v.scope(f)), nil
}

func (v snapshot) CountLatestDocuments(ctx context.Context, f query.Filter) (int, error) {
    ids := v.scope(f)
    n := 0
    for id := range v.latest() {
        if _, ok := ids[id]; ok {
            n++
        }
    }
    return n, nil
}

func (v snapshot) CountReportRecords(ctx context.Context, f query.Filter) (int, error) {
    ids := v.scope(f)
    n := 0
    for _, r := range v.s.reportRecords {
        if _, ok := ids[r.FactoryID]; ok {
            n++
        }
    }
    return n, nil
}

func (v snapshot) CountReportedFactories(ctx context.Context, f query.Filter) (int, error) {
    ids := v.scope(f)
    seen := make(map[string]struct{})
    for _, r := range v.s.reportRecords {
        if _, ok := ids[r.FactoryID]; ok {
            seen[r.FactoryID] = struct{}{}
        }
    }
    return len(seen), nil
}

func (v snapshot) CountImages(ctx context.Context, f query.Filter) (int, error) {
    ids := v.scope(f)
    n := 0
    for _, i := range v.s.images {
        if _, ok := ids[i.FactoryID]; ok {
            n++
        }
    }
    return n, nil
}

func (v snapshot) CountLatestStatuses(ctx context.Context, f query.Filter) (map[domain.DisplayStatus]int, error) {
    ids := v.scope(f)
    out := make(map[domain.DisplayStatus]int)
    for id, d := range v.latest() {
        if _, ok := ids[id]; ok {
            out[d.DisplayStatus]++
        }
    }
    return out, nil
}
