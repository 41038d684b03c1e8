package httpadapter

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    api "github.com/pm5/Disfactory/internal/api"
    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/logger"
    "github.com/pm5/Disfactory/internal/metrics"
    "github.com/pm5/Disfactory/internal/ports"
)

// Server implements the generated StrictServerInterface.
type Server struct {
    stats  ports.Statistics
    pinger ports.Pinger
    log    logger.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(stats ports.Statistics, pinger ports.Pinger, log logger.Logger) *Server {
    return &Server{stats: stats, pinger: pinger, log: log}
}

// Routes returns a chi.Router mounting the generated handlers next to the
// metrics and OpenAPI document endpoints.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(logger.AccessMiddleware(s.log))
    r.Use(middleware.Recoverer)
    r.Use(metrics.Middleware)

    r.Method(http.MethodGet, "/metrics", metrics.Handler())
    r.Get("/api/statistics/openapi.yaml", getOpenAPI)

    // Generated handler wiring
    handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
        RequestErrorHandlerFunc:  badRequest,
        ResponseErrorHandlerFunc: responseError,
    })
    api.HandlerWithOptions(handler, api.ChiServerOptions{
        BaseRouter:       r,
        ErrorHandlerFunc: badRequest,
    })
    return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    if err := s.pinger.Ping(ctx); err != nil {
        logger.FromContext(ctx).Warn("health check failed", logger.Error(err))
        return api.GetHealthz503JSONResponse{Status: "unavailable"}, nil
    }
    return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetFactoryStatistics(ctx context.Context, req api.GetFactoryStatisticsRequestObject) (api.GetFactoryStatisticsResponseObject, error) {
    p := req.Params
    res, err := s.stats.Rollup(ctx, ports.Params{
        Townname:      deref(p.Townname),
        Source:        deref(p.Source),
        DisplayStatus: deref(p.DisplayStatus),
        Level:         deref(p.Level),
    })
    if err != nil {
        body, invalid := failure(ctx, err)
        if invalid {
            return api.GetFactoryStatistics400JSONResponse(body), nil
        }
        return api.GetFactoryStatistics500JSONResponse(body), nil
    }
    return api.GetFactoryStatistics200JSONResponse{Breakdown: res}, nil
}

func (s *Server) GetImageCount(ctx context.Context, req api.GetImageCountRequestObject) (api.GetImageCountResponseObject, error) {
    p := req.Params
    n, err := s.stats.PhotoCount(ctx, countParams(p.Townname, p.Source, p.DisplayStatus))
    if err != nil {
        body, invalid := failure(ctx, err)
        if invalid {
            return api.GetImageCount400JSONResponse(body), nil
        }
        return api.GetImageCount500JSONResponse(body), nil
    }
    return api.GetImageCount200JSONResponse{Count: n}, nil
}

func (s *Server) GetReportRecordCount(ctx context.Context, req api.GetReportRecordCountRequestObject) (api.GetReportRecordCountResponseObject, error) {
    p := req.Params
    n, err := s.stats.ReportRecordCount(ctx, countParams(p.Townname, p.Source, p.DisplayStatus))
    if err != nil {
        body, invalid := failure(ctx, err)
        if invalid {
            return api.GetReportRecordCount400JSONResponse(body), nil
        }
        return api.GetReportRecordCount500JSONResponse(body), nil
    }
    return api.GetReportRecordCount200JSONResponse{Count: n}, nil
}

func (s *Server) GetStatisticsTotal(ctx context.Context, _ api.GetStatisticsTotalRequestObject) (api.GetStatisticsTotalResponseObject, error) {
    res, err := s.stats.Summary(ctx)
    if err != nil {
        body, _ := failure(ctx, err)
        return api.GetStatisticsTotal500JSONResponse(body), nil
    }
    return api.GetStatisticsTotal200JSONResponse{Summary: res}, nil
}

func getOpenAPI(w http.ResponseWriter, _ *http.Request) {
    w.Header().Set("Content-Type", "application/yaml")
    _, _ = w.Write(api.Spec)
}

func countParams(townname *string, source *api.Source, status *string) ports.Params {
    return ports.Params{
        Townname:      deref(townname),
        Source:        deref(source),
        DisplayStatus: deref(status),
    }
}

func deref[T ~string](v *T) string {
    if v == nil {
        return ""
    }
    return string(*v)
}

func optional(s string) *string {
    if s == "" {
        return nil
    }
    return &s
}

// failure maps a service error to an error body. invalid reports whether the
// request itself was rejected; anything else is a store failure and is not
// described to the client.
func failure(ctx context.Context, err error) (body api.Error, invalid bool) {
    log := logger.FromContext(ctx)
    var ve *domain.ValidationError
    if errors.As(err, &ve) {
        log.Debug("rejected request", logger.String("field", ve.Field), logger.String("value", ve.Value))
        body = api.Error{Error: ve.Error(), Field: optional(ve.Field), Value: optional(ve.Value)}
        if len(ve.Accepted) > 0 {
            accepted := ve.Accepted
            body.Accepted = &accepted
        }
        return body, true
    }
    log.Error("statistics request failed", logger.Error(err))
    return api.Error{Error: domain.ErrDataStoreUnavailable.Error()}, false
}

// badRequest answers query parameters the generated wrapper could not bind.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
    body := api.Error{Error: err.Error()}
    var pe *api.InvalidParamFormatError
    if errors.As(err, &pe) {
        body.Field = optional(pe.ParamName)
    }
    logger.FromContext(r.Context()).Debug("unbindable request", logger.Error(err))
    writeJSON(w, http.StatusBadRequest, body)
}

func responseError(w http.ResponseWriter, r *http.Request, err error) {
    logger.FromContext(r.Context()).Error("write response", logger.Error(err))
    writeJSON(w, http.StatusInternalServerError, api.Error{Error: http.StatusText(http.StatusInternalServerError)})
}

// writeJSON encodes v fully before writing, so a failed encode never leaves a
// partial body.
func writeJSON(w http.ResponseWriter, status int, v any) {
    b, err := json.Marshal(v)
    if err != nil {
        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(http.StatusInternalServerError)
        _, _ = w.Write([]byte(`{"error":"encode response"}`))
        return
    }
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _, _ = w.Write(b)
}
