// Package regions holds the city → township reference table and the
// canonicalisation of free-form region names against it.
package regions

import (
    _ "embed"
    "fmt"
    "os"

    "gopkg.in/yaml.v3"
)

// CityLen is the fixed width, in characters, of every canonical city name.
const CityLen = 3

//go:embed data/regions.yaml
var embedded []byte

type entry struct {
    City  string   `yaml:"city"`
    Towns []string `yaml:"towns"`
}

// Lookup is the immutable reference table. It is loaded once at start and
// safe for concurrent readers.
type Lookup struct {
    cities []string
    towns  map[string][]string
    index  map[string]map[string]struct{}
}

// Default returns the embedded table.
func Default() (*Lookup, error) { return Parse(embedded) }

// Load reads a table from a YAML file, or the embedded table when path is empty.
func Load(path string) (*Lookup, error) {
    if path == "" {
        return Default()
    }
    b, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read regions file %s: %w", path, err)
    }
    return Parse(b)
}

// Parse builds a table from YAML: a list of {city, towns} entries.
func Parse(b []byte) (*Lookup, error) {
    var entries []entry
    if err := yaml.Unmarshal(b, &entries); err != nil {
        return nil, fmt.Errorf("parse regions: %w", err)
    }
    if len(entries) == 0 {
        return nil, fmt.Errorf("parse regions: no cities")
    }
    l := &Lookup{
        towns: make(map[string][]string, len(entries)),
        index: make(map[string]map[string]struct{}, len(entries)),
    }
    for _, e := range entries {
        if len([]rune(e.City)) != CityLen {
            return nil, fmt.Errorf("parse regions: city %q is not %d characters", e.City, CityLen)
        }
        if _, dup := l.towns[e.City]; dup {
            return nil, fmt.Errorf("parse regions: duplicate city %q", e.City)
        }
        set := make(map[string]struct{}, len(e.Towns))
        for _, t := range e.Towns {
            set[t] = struct{}{}
        }
        l.cities = append(l.cities, e.City)
        l.towns[e.City] = append([]string(nil), e.Towns...)
        l.index[e.City] = set
    }
    return l, nil
}

// Cities returns every city in table order.
func (l *Lookup) Cities() []string { return append([]string(nil), l.cities...) }

func (l *Lookup) HasCity(city string) bool {
    _, ok := l.towns[city]
    return ok
}

// Towns returns the townships of a city in table order, nil for unknown cities.
func (l *Lookup) Towns(city string) []string {
    t, ok := l.towns[city]
    if !ok {
        return nil
    }
    return append([]string(nil), t...)
}

func (l *Lookup) HasTown(city, town string) bool {
    _, ok := l.index[city][town]
    return ok
}

// Split cuts a normalized region into its city and township portions by the
// fixed city width. A region shorter than the width is all city.
func Split(region string) (city, town string) {
    r := []rune(region)
    if len(r) <= CityLen {
        return region, ""
    }
    return string(r[:CityLen]), string(r[CityLen:])
}
