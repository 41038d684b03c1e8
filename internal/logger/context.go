package logger

import (
    "context"
    "sync"
)

type ctxKey struct{}

func WithContext(ctx context.Context, l Logger) context.Context {
    return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request logger, or a shared warn-level stderr
// logger when the context carries none.
func FromContext(ctx context.Context) Logger {
    if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
        return l
    }
    return fallback()
}

var (
    fallbackLog  Logger
    fallbackOnce sync.Once
)

func fallback() Logger {
    fallbackOnce.Do(func() {
        l, err := New(Config{Level: "warn"})
        if err != nil {
            l = NewNop()
        }
        fallbackLog = l
    })
    return fallbackLog
}
