package domain

import (
    "fmt"
    "strings"
)

var (
    ErrInvalidSource        = errString("invalid source")
    ErrInvalidStatusLabel   = errString("invalid display_status")
    ErrInvalidLevel         = errString("invalid level")
    ErrInvalidCity          = errString("invalid city")
    ErrDataStoreUnavailable = errString("data store unavailable")
)

type errString string

func (e errString) Error() string { return string(e) }

// ValidationError is a rejected request parameter. It unwraps to one of the
// Err* kinds above.
type ValidationError struct {
    Kind     error
    Field    string
    Value    string
    Accepted []string // nil when the accepted set is not enumerable
}

func (e *ValidationError) Error() string {
    if len(e.Accepted) == 0 {
        return fmt.Sprintf("%s: %q", e.Field, e.Value)
    }
    return fmt.Sprintf("%s: [%s]", e.Field, strings.Join(e.Accepted, ","))
}

func (e *ValidationError) Unwrap() error { return e.Kind }
