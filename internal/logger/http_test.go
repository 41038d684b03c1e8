package logger

import (
    "net/http"
    "net/http/httptest"
    "sync"
    "testing"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zapcore"
)

type entry struct {
    msg    string
    fields map[string]any
}

// recorder keeps every Info entry in memory.
type recorder struct {
    mu      sync.Mutex
    base    []Field
    entries *[]entry
}

func newRecorder() *recorder { return &recorder{entries: &[]entry{}} }

func (r *recorder) Debug(string, ...Field) {}
func (r *recorder) Warn(string, ...Field)  {}
func (r *recorder) Error(string, ...Field) {}
func (r *recorder) Sync() error            { return nil }

func (r *recorder) Info(msg string, fields ...Field) {
    enc := zapcore.NewMapObjectEncoder()
    for _, f := range append(append([]Field(nil), r.base...), fields...) {
        f.AddTo(enc)
    }
    r.mu.Lock()
    defer r.mu.Unlock()
    *r.entries = append(*r.entries, entry{msg: msg, fields: enc.Fields})
}

func (r *recorder) With(fields ...Field) Logger {
    return &recorder{base: append(append([]Field(nil), r.base...), fields...), entries: r.entries}
}

func TestAccessMiddleware(t *testing.T) {
    rec := newRecorder()
    var inHandler Logger

    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(AccessMiddleware(rec))
    r.Get("/stats/{kind}", func(w http.ResponseWriter, r *http.Request) {
        inHandler = FromContext(r.Context())
        w.WriteHeader(http.StatusAccepted)
        _, _ = w.Write([]byte("ok"))
    })

    resp := httptest.NewRecorder()
    r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stats/images?source=G", nil))
    require.Equal(t, http.StatusAccepted, resp.Code)

    require.Len(t, *rec.entries, 1)
    e := (*rec.entries)[0]
    assert.Equal(t, "http_access", e.msg)
    assert.Equal(t, "/stats/{kind}", e.fields["route"])
    assert.Equal(t, "source=G", e.fields["query"])
    assert.EqualValues(t, http.StatusAccepted, e.fields["status"])
    assert.EqualValues(t, 2, e.fields["bytes"])
    assert.NotEmpty(t, e.fields["request_id"])

    _, isRecorder := inHandler.(*recorder)
    assert.True(t, isRecorder)
}
