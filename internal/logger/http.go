package logger

import (
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
)

// AccessMiddleware puts a request-scoped logger, tagged with the chi request
// id, into the context and logs one line per request once it completes.
func AccessMiddleware(l Logger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            reqLog := l
            if id := middleware.GetReqID(r.Context()); id != "" {
                reqLog = l.With(String("request_id", id))
            }
            ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            next.ServeHTTP(ww, r.WithContext(WithContext(r.Context(), reqLog)))

            status := ww.Status()
            if status == 0 {
                status = http.StatusOK
            }
            route := r.URL.Path
            if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
                route = rc.RoutePattern()
            }
            reqLog.Info("http_access",
                String("method", r.Method),
                String("route", route),
                String("query", r.URL.RawQuery),
                Int("status", status),
                Int("bytes", ww.BytesWritten()),
                Duration("duration", time.Since(start)),
                String("ip", r.RemoteAddr),
            )
        })
    }
}
