package domain

import "time"

// Core records read by the statistics service. They are owned and written by
// other parts of the platform; nothing here mutates them.

// Source is the origin of a factory record.
type Source string

const (
    SourceGovernment Source = "G"
    SourceUser       Source = "U"
)

// Sources lists the accepted source codes.
func Sources() []string { return []string{string(SourceGovernment), string(SourceUser)} }

// ParseSource accepts "", "G" or "U". The empty string means no source filter.
func ParseSource(raw string) (Source, error) {
    switch Source(raw) {
    case "", SourceGovernment, SourceUser:
        return Source(raw), nil
    }
    return "", &ValidationError{Kind: ErrInvalidSource, Field: "source", Value: raw, Accepted: Sources()}
}

type Factory struct {
    ID       string
    Name     string
    Townname string // free text, may carry a legacy 臺灣省 prefix
    Source   Source
}

type Document struct {
    ID            string
    FactoryID     string
    DisplayStatus DisplayStatus
    CreatedAt     time.Time
}

type ReportRecord struct {
    ID        string
    FactoryID string
    CreatedAt time.Time
}

type Image struct {
    ID        string
    FactoryID string
    CreatedAt time.Time
}

// Level selects how deep a rollup nests below the nationwide node.
type Level int

const (
    LevelNone Level = iota
    LevelCity
    LevelTown
)

// ParseLevel accepts "", "city" or "town".
func ParseLevel(raw string) (Level, error) {
    switch raw {
    case "":
        return LevelNone, nil
    case "city":
        return LevelCity, nil
    case "town":
        return LevelTown, nil
    }
    return LevelNone, &ValidationError{Kind: ErrInvalidLevel, Field: "level", Value: raw, Accepted: []string{"city", "town"}}
}

func (l Level) String() string {
    switch l {
    case LevelCity:
        return "city"
    case LevelTown:
        return "town"
    }
    return ""
}
