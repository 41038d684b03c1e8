package statistics

import (
    "context"
    "errors"
    "strconv"
    "testing"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/testutil"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/pm5/Disfactory/internal/adapters/memory"
    "github.com/pm5/Disfactory/internal/domain"
    "github.com/pm5/Disfactory/internal/metrics"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/regions"
)

var t0 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
    store *memory.Store
    n     int
}

func (fx *fixture) factory(townname string, source domain.Source, statuses ...domain.DisplayStatus) string {
    fx.n++
    id := "f" + strconv.Itoa(fx.n)
    fx.store.AddFactories(domain.Factory{ID: id, Townname: townname, Source: source})
    for i, st := range statuses {
        fx.store.AddDocuments(domain.Document{
            ID:            id + "-d" + strconv.Itoa(i),
            FactoryID:     id,
            DisplayStatus: st,
            CreatedAt:     t0.Add(time.Duration(i) * time.Hour),
        })
    }
    return id
}

func (fx *fixture) reports(factoryID string, n int) {
    for i := 0; i < n; i++ {
        fx.store.AddReportRecords(domain.ReportRecord{ID: factoryID + "-r" + strconv.Itoa(i), FactoryID: factoryID, CreatedAt: t0})
    }
}

func (fx *fixture) images(factoryID string, n int) {
    for i := 0; i < n; i++ {
        fx.store.AddImages(domain.Image{ID: factoryID + "-i" + strconv.Itoa(i), FactoryID: factoryID, CreatedAt: t0})
    }
}

// seeded builds a small nationwide data set:
//
//  臺南市東區   U  已檢舉→已勒令停工   2 reports, 1 image
//  臺南市善化區 G  已拆除             1 report
//  臺灣省彰化縣員林市 G 已發函斷電     3 images
//  彰化縣和美鎮 U  不再追蹤            1 report
//  臺北市大安區 U  (no documents)
//  新北市板橋區 U  已排程稽查          2 reports
func seeded(t *testing.T) (*Service, *memory.Store) {
    t.Helper()
    fx := &fixture{store: memory.New()}
    a := fx.factory("臺南市東區", domain.SourceUser, domain.StatusReported, domain.StatusWorkStopped)
    fx.reports(a, 2)
    fx.images(a, 1)
    b := fx.factory("臺南市善化區", domain.SourceGovernment, domain.StatusDemolished)
    fx.reports(b, 1)
    c := fx.factory("臺灣省彰化縣員林市", domain.SourceGovernment, domain.StatusPowerCutNotified)
    fx.images(c, 3)
    d := fx.factory("彰化縣和美鎮", domain.SourceUser, domain.StatusNoLongerTracked)
    fx.reports(d, 1)
    fx.factory("臺北市大安區", domain.SourceUser)
    e := fx.factory("新北市板橋區", domain.SourceUser, domain.StatusInspectionScheduled)
    fx.reports(e, 2)

    lookup, err := regions.Default()
    require.NoError(t, err)
    return New(fx.store, lookup, WithWorkers(3)), fx.store
}

func TestRollupNationwideOnly(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{})
    require.NoError(t, err)
    assert.Equal(t, domain.Counts{Factories: 6, Documents: 5, ReportRecords: 6}, got.Counts)
    assert.Nil(t, got.Cities)
}

func TestRollupCityLevelCoversEveryCity(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{Level: "city"})
    require.NoError(t, err)

    lookup, _ := regions.Default()
    require.Len(t, got.Cities, len(lookup.Cities()))
    var sum domain.Counts
    for i, c := range got.Cities {
        assert.Equal(t, lookup.Cities()[i], c.Name)
        assert.Nil(t, c.Towns)
        sum.Factories += c.Factories
        sum.Documents += c.Documents
        sum.ReportRecords += c.ReportRecords
    }
    assert.Equal(t, got.Counts, sum)

    tainan, ok := got.Cities.Find("臺南市")
    require.True(t, ok)
    assert.Equal(t, domain.Counts{Factories: 2, Documents: 2, ReportRecords: 3}, tainan.Counts)
}

func TestRollupTownnameWithoutLevelOmitsCities(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{Townname: "臺南市"})
    require.NoError(t, err)
    assert.Nil(t, got.Cities)
    // the nationwide node ignores the region
    assert.Equal(t, 6, got.Factories)
}

func TestRollupSingleCity(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{Townname: "台南市", Level: "city"})
    require.NoError(t, err)
    require.Len(t, got.Cities, 1)
    assert.Equal(t, "臺南市", got.Cities[0].Name)
    assert.Equal(t, 2, got.Cities[0].Factories)
}

func TestRollupTownLevelEnumeratesTownships(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{Townname: "彰化縣", Level: "town"})
    require.NoError(t, err)
    require.Len(t, got.Cities, 1)

    lookup, _ := regions.Default()
    city := got.Cities[0]
    assert.Equal(t, domain.Counts{Factories: 2, Documents: 2, ReportRecords: 1}, city.Counts)
    require.Len(t, city.Towns, len(lookup.Towns("彰化縣")))

    yuanlin, ok := city.Towns.Find("員林市")
    require.True(t, ok)
    assert.Equal(t, 1, yuanlin.Factories)
    hemei, ok := city.Towns.Find("和美鎮")
    require.True(t, ok)
    assert.Equal(t, domain.Counts{Factories: 1, Documents: 1, ReportRecords: 1}, hemei.Counts)
}

func TestRollupSingleTown(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{Townname: "臺南市東區", Level: "town"})
    require.NoError(t, err)
    require.Len(t, got.Cities, 1)
    // the city node covers the whole city
    assert.Equal(t, 2, got.Cities[0].Factories)
    require.Len(t, got.Cities[0].Towns, 1)
    assert.Equal(t, "東區", got.Cities[0].Towns[0].Name)
    assert.Equal(t, domain.Counts{Factories: 1, Documents: 1, ReportRecords: 2}, got.Cities[0].Towns[0].Counts)
}

func TestRollupStatusFilterShortCircuitsDocuments(t *testing.T) {
    svc, _ := seeded(t)
    for _, label := range domain.StatusLabels() {
        got, err := svc.Rollup(context.Background(), ports.Params{DisplayStatus: label, Level: "city"})
        require.NoError(t, err, label)
        assert.Equal(t, got.Factories, got.Documents, label)
        for _, c := range got.Cities {
            assert.Equal(t, c.Factories, c.Documents, label+" "+c.Name)
        }
    }
}

func TestRollupInProgressIsUnionOfFourStatuses(t *testing.T) {
    svc, _ := seeded(t)
    ctx := context.Background()
    composite, err := svc.Rollup(ctx, ports.Params{DisplayStatus: "處理中"})
    require.NoError(t, err)

    var sum domain.Counts
    for _, st := range []domain.DisplayStatus{
        domain.StatusInspectionScheduled, domain.StatusStatementPeriod,
        domain.StatusWorkStopped, domain.StatusDemolitionScheduled,
    } {
        got, err := svc.Rollup(ctx, ports.Params{DisplayStatus: st.String()})
        require.NoError(t, err)
        sum.Factories += got.Factories
        sum.Documents += got.Documents
        sum.ReportRecords += got.ReportRecords
    }
    assert.Equal(t, sum, composite.Counts)
    assert.Equal(t, domain.Counts{Factories: 2, Documents: 2, ReportRecords: 4}, composite.Counts)
}

func TestRollupStatusAndSource(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{DisplayStatus: "已拆除", Source: "G"})
    require.NoError(t, err)
    assert.Equal(t, 1, got.Factories)

    got, err = svc.Rollup(context.Background(), ports.Params{DisplayStatus: "已拆除", Source: "U"})
    require.NoError(t, err)
    assert.Equal(t, 0, got.Factories)
}

func TestRollupSupersededStatusDoesNotMatch(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Rollup(context.Background(), ports.Params{DisplayStatus: "已檢舉"})
    require.NoError(t, err)
    assert.Equal(t, 0, got.Factories)
}

func TestValidation(t *testing.T) {
    svc, store := seeded(t)
    // validation must fail before the store is touched
    store.Err = errors.New("store must not be queried")

    tests := []struct {
        name   string
        params ports.Params
        kind   error
        field  string
    }{
        {"source", ports.Params{Source: "X"}, domain.ErrInvalidSource, "source"},
        {"status", ports.Params{DisplayStatus: "foo"}, domain.ErrInvalidStatusLabel, "display_status"},
        {"level", ports.Params{Level: "country"}, domain.ErrInvalidLevel, "level"},
        {"city", ports.Params{Townname: "XYZ"}, domain.ErrInvalidCity, "townname"},
        {"city with town", ports.Params{Townname: "火星市東區"}, domain.ErrInvalidCity, "townname"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := svc.Rollup(context.Background(), tt.params)
            require.Error(t, err)
            assert.ErrorIs(t, err, tt.kind)
            var ve *domain.ValidationError
            require.ErrorAs(t, err, &ve)
            assert.Equal(t, tt.field, ve.Field)
        })
    }
}

func TestValidationStatusListsNineLabels(t *testing.T) {
    svc, _ := seeded(t)
    _, err := svc.PhotoCount(context.Background(), ports.Params{DisplayStatus: "foo"})
    var ve *domain.ValidationError
    require.ErrorAs(t, err, &ve)
    assert.Equal(t, domain.StatusLabels(), ve.Accepted)
    assert.Len(t, ve.Accepted, 9)
}

func TestCountsIgnoreLevel(t *testing.T) {
    svc, _ := seeded(t)
    n, err := svc.PhotoCount(context.Background(), ports.Params{Level: "bogus"})
    require.NoError(t, err)
    assert.Equal(t, 4, n)
}

func TestPhotoCount(t *testing.T) {
    svc, _ := seeded(t)
    ctx := context.Background()

    n, err := svc.PhotoCount(ctx, ports.Params{Townname: "彰化縣員林市"})
    require.NoError(t, err)
    assert.Equal(t, 3, n)

    n, err = svc.PhotoCount(ctx, ports.Params{Townname: "臺南市", DisplayStatus: "處理中"})
    require.NoError(t, err)
    assert.Equal(t, 1, n)
}

func TestJobsAreCountedByOperation(t *testing.T) {
    svc, _ := seeded(t)
    ctx := context.Background()
    jobs := func(op string) float64 {
        return testutil.ToFloat64(metrics.AggregationJobsTotal.With(prometheus.Labels{"op": op, "outcome": "ok"}))
    }
    images, records, city := jobs("images"), jobs("report_records"), jobs("city")

    _, err := svc.PhotoCount(ctx, ports.Params{})
    require.NoError(t, err)
    _, err = svc.ReportRecordCount(ctx, ports.Params{})
    require.NoError(t, err)
    _, err = svc.Rollup(ctx, ports.Params{Townname: "臺南市", Level: "city"})
    require.NoError(t, err)

    assert.Equal(t, images+1, jobs("images"))
    assert.Equal(t, records+1, jobs("report_records"))
    assert.Equal(t, city+1, jobs("city"))
}

func TestReportRecordCountIsNotDeduplicated(t *testing.T) {
    svc, _ := seeded(t)
    n, err := svc.ReportRecordCount(context.Background(), ports.Params{Townname: "臺南市"})
    require.NoError(t, err)
    assert.Equal(t, 3, n)
}

func TestSummary(t *testing.T) {
    svc, _ := seeded(t)
    got, err := svc.Summary(context.Background())
    require.NoError(t, err)

    lookup, _ := regions.Default()
    require.Len(t, got, len(lookup.Cities()))
    for i, row := range got {
        assert.Equal(t, lookup.Cities()[i], row.City)
        buckets := 0
        for _, n := range row.Buckets {
            buckets += n
        }
        assert.LessOrEqual(t, buckets, row.Documents, row.City)
    }

    byCity := map[string]domain.CitySummary{}
    for _, row := range got {
        byCity[row.City] = row
    }

    tainan := byCity["臺南市"]
    assert.Equal(t, 2, tainan.Factories)
    assert.Equal(t, 2, tainan.Documents)
    assert.Equal(t, 2, tainan.ReportRecords)
    assert.Equal(t, 1, tainan.Bucket(domain.BucketInProgress))
    assert.Equal(t, 1, tainan.Bucket(domain.BucketDemolished))
    assert.Equal(t, 0, tainan.Bucket(domain.BucketUnhandled))

    // 不再追蹤 counts as a document but falls in no bucket
    changhua := byCity["彰化縣"]
    assert.Equal(t, 2, changhua.Documents)
    assert.Equal(t, 1, changhua.ReportRecords)
    assert.Equal(t, 1, changhua.Bucket(domain.BucketPowerCut))
    assert.Equal(t, 1, changhua.Buckets[0]+changhua.Buckets[1]+changhua.Buckets[2]+changhua.Buckets[3])

    taipei := byCity["臺北市"]
    assert.Equal(t, 1, taipei.Factories)
    assert.Equal(t, 0, taipei.Documents)
}

func TestStoreFailureReturnsNoPartialResult(t *testing.T) {
    svc, store := seeded(t)
    store.Err = domain.ErrDataStoreUnavailable
    ctx := context.Background()

    got, err := svc.Rollup(ctx, ports.Params{Level: "town"})
    assert.ErrorIs(t, err, domain.ErrDataStoreUnavailable)
    assert.Equal(t, domain.Breakdown{}, got)

    sum, err := svc.Summary(ctx)
    assert.ErrorIs(t, err, domain.ErrDataStoreUnavailable)
    assert.Nil(t, sum)

    _, err = svc.ReportRecordCount(ctx, ports.Params{})
    assert.ErrorIs(t, err, domain.ErrDataStoreUnavailable)
}
