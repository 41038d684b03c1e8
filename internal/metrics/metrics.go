// Package metrics holds the prometheus collectors of the statistics service.
package metrics

import (
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
        Name: "disfactory_stats_http_requests_total",
        Help: "HTTP requests by route and status code",
    }, []string{"route", "code"})
    RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
        Name:    "disfactory_stats_http_request_duration_seconds",
        Help:    "HTTP request duration by route",
        Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
    }, []string{"route"})
    AggregationJobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
        Name: "disfactory_stats_aggregation_jobs_total",
        Help: "Aggregation snapshots run, by operation and outcome",
    }, []string{"op", "outcome"})
    StoreErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
        Name: "disfactory_stats_store_errors_total",
        Help: "Data store failures by operation",
    }, []string{"op"})
)

func init() {
    prometheus.MustRegister(RequestsTotal)
    prometheus.MustRegister(RequestDuration)
    prometheus.MustRegister(AggregationJobsTotal)
    prometheus.MustRegister(StoreErrorsTotal)
}

// ObserveJob counts one aggregation snapshot. op is the region level for
// rollup jobs and the operation name otherwise.
func ObserveJob(op string, err error) {
    outcome := "ok"
    if err != nil {
        outcome = "error"
    }
    AggregationJobsTotal.WithLabelValues(op, outcome).Inc()
}

// Middleware records request counts and latency keyed by the chi route
// pattern, so path parameters never blow up label cardinality.
func Middleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
        next.ServeHTTP(ww, r)

        route := "unmatched"
        if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
            route = rc.RoutePattern()
        }
        status := ww.Status()
        if status == 0 {
            status = http.StatusOK
        }
        RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
        RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
    })
}

func Handler() http.Handler { return promhttp.Handler() }
