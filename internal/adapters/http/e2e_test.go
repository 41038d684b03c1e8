package httpadapter

import (
    "errors"
    "net/http"
    "net/url"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/pm5/Disfactory/internal/adapters/memory"
    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/regions"
    "github.com/pm5/Disfactory/internal/services/statistics"
)

func TestEndToEndWithMemoryStore(t *testing.T) {
    t0 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
    store := memory.New()
    store.AddFactories(
        domain.Factory{ID: "a", Townname: "臺灣省臺南市善化區", Source: domain.SourceGovernment},
        domain.Factory{ID: "b", Townname: "臺南市東區", Source: domain.SourceUser},
    )
    store.AddDocuments(
        domain.Document{ID: "d1", FactoryID: "a", DisplayStatus: domain.StatusDemolished, CreatedAt: t0},
        domain.Document{ID: "d2", FactoryID: "b", DisplayStatus: domain.StatusReported, CreatedAt: t0},
    )
    store.AddReportRecords(
        domain.ReportRecord{ID: "r1", FactoryID: "a", CreatedAt: t0},
        domain.ReportRecord{ID: "r2", FactoryID: "a", CreatedAt: t0},
    )
    lookup, err := regions.Default()
    require.NoError(t, err)
    svc := statistics.New(store, lookup, statistics.WithWorkers(2))

    q := url.Values{"townname": {"台南市 善化區"}, "level": {"town"}}
    rec := serve(t, svc, store, "/api/statistics/factories?"+q.Encode())
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    assert.JSONEq(t, `{
        "factories": 2, "documents": 2, "report_records": 2,
        "cities": {"臺南市": {"factories": 2, "documents": 2, "report_records": 2,
            "towns": {"善化區": {"factories": 1, "documents": 1, "report_records": 2}}}}
    }`, rec.Body.String())

    q = url.Values{"display_status": {"已拆除"}, "source": {"G"}}
    rec = serve(t, svc, store, "/api/statistics/factories?"+q.Encode())
    require.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"factories": 1, "documents": 1, "report_records": 2}`, rec.Body.String())

    rec = serve(t, svc, store, "/api/statistics/factories?townname=XYZ")
    require.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "townname", decode(t, rec)["field"])

    rec = serve(t, svc, store, "/api/statistics/total")
    require.Equal(t, http.StatusOK, rec.Code)
    body := decode(t, rec)
    assert.Len(t, body, len(lookup.Cities()))
    tainan := body["臺南市"].(map[string]any)
    assert.EqualValues(t, 1, tainan["report_records"])
    assert.EqualValues(t, 1, tainan["未處理"])
    assert.EqualValues(t, 1, tainan["已拆除"])

    rec = serve(t, svc, store, "/api/statistics/total")
    // canonical city order on the wire
    assert.Regexp(t, `^\{"臺北市":`, rec.Body.String())

    rec = serve(t, svc, store, "/api/statistics/report_records?display_status=a&display_status=b")
    require.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "display_status", decode(t, rec)["field"])

    store.Err = errors.New("connection refused")
    rec = serve(t, svc, store, "/api/statistics/factories?level=city")
    require.Equal(t, http.StatusInternalServerError, rec.Code)
    assert.JSONEq(t, `{"error":"data store unavailable"}`, rec.Body.String())

    rec = serve(t, svc, store, "/healthz")
    assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
