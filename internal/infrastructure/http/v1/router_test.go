package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/domain/reference"
	"isoref/internal/infrastructure/http/v1/dto"
	"isoref/internal/infrastructure/http/v1/handlers"
	"isoref/internal/infrastructure/metrics"
	"isoref/internal/infrastructure/snapshot"
	"isoref/internal/metadata"
	"isoref/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router  *gin.Engine
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	m := metrics.New()

	codec, err := snapshot.NewCodec()
	require.NoError(t, err)
	t.Cleanup(codec.Close)

	dataset, err := handlers.NewDatasetHandler(snapshot.Build(time.Now()), codec)
	require.NoError(t, err)

	reg := metadata.NewRegistry()
	reg.Register(metadata.Inspect(dto.CurrencyResponse{}, "currency", metadata.TypeCatalog, nil))

	return &testServer{
		router: NewRouter(RouterConfig{
			Logger:           logger.Nop(),
			Service:          reference.NewService(m),
			Metrics:          m,
			MetadataRegistry: reg,
			Dataset:          dataset,
			Started:          time.Now(),
		}),
		metrics: m,
	}
}

func (s *testServer) get(t *testing.T, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestGetCountry_AnyForm(t *testing.T) {
	s := newTestServer(t)

	for _, code := range []string{"GB", "gbr", "826"} {
		w := s.get(t, "/api/v1/countries/"+code)
		require.Equal(t, http.StatusOK, w.Code, code)

		got := decode[dto.CountryResponse](t, w)
		assert.Equal(t, "GB", got.Alpha2)
		assert.Equal(t, "GBR", got.Alpha3)
		assert.EqualValues(t, 826, got.Numeric)
		assert.Equal(t, []string{"GBP"}, got.Currencies)
	}
}

func TestGetCountry_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		code   string
		status int
		want   string
	}{
		{name: "malformed", code: "XYZ123", status: http.StatusBadRequest, want: apperror.CodeInvalidCode},
		{name: "unassigned alpha2", code: "ZZ", status: http.StatusNotFound, want: apperror.CodeUnknownCode},
		{name: "unassigned numeric", code: "000", status: http.StatusNotFound, want: apperror.CodeUnknownCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.get(t, "/api/v1/countries/"+tt.code, "X-Request-ID", "req-"+tt.name)
			require.Equal(t, tt.status, w.Code)

			got := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, "req-"+tt.name, got.RequestID)
			assert.Equal(t, "req-"+tt.name, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestTraceHeaders_Generated(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	long := strings.Repeat("x", 200)
	w = s.get(t, "/health/live", "X-Request-ID", long)
	assert.NotEqual(t, long, w.Header().Get("X-Request-ID"))
}

func TestRelations(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/currencies/gbp/countries")
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]dto.CountryResponse](t, w)
	alpha2 := make([]string, len(users))
	for i, u := range users {
		alpha2[i] = u.Alpha2
	}
	assert.Equal(t, []string{"GB", "GG", "IM", "JE", "SH"}, alpha2)

	w = s.get(t, "/api/v1/countries/CH/currencies")
	require.Equal(t, http.StatusOK, w.Code)
	currencies := decode[[]dto.CurrencyResponse](t, w)
	require.Len(t, currencies, 3)
	assert.Equal(t, "CHE", currencies[0].Alpha3)

	// A valid entity with no relations is an empty array, not null.
	w = s.get(t, "/api/v1/countries/AQ/languages")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.get(t, "/api/v1/languages/en/countries")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[[]dto.CountryResponse](t, w))

	w = s.get(t, "/api/v1/languages/ZZ/countries")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/countries")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.ListResponse[dto.CountryResponse]](t, w)
	assert.EqualValues(t, 249, page.TotalCount)
	assert.Len(t, page.Items, 50)
	assert.Equal(t, "AD", page.Items[0].Alpha2)

	q := url.Values{}
	q.Set("filter", `[{"field":"currencies","operator":"eq","value":"GBP"}]`)
	q.Set("orderBy", "-name")
	w = s.get(t, "/api/v1/countries?"+q.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[dto.ListResponse[dto.CountryResponse]](t, w)
	assert.EqualValues(t, 5, page.TotalCount)
	assert.Equal(t, "GB", page.Items[0].Alpha2)

	q = url.Values{}
	q.Set("expr", "digits == 3")
	w = s.get(t, "/api/v1/currencies?"+q.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 7, decode[dto.ListResponse[dto.CurrencyResponse]](t, w).TotalCount)

	w = s.get(t, "/api/v1/languages?limit=10&offset=180")
	require.Equal(t, http.StatusOK, w.Code)
	langs := decode[dto.ListResponse[dto.LanguageResponse]](t, w)
	assert.Len(t, langs.Items, 3)
	assert.Equal(t, 10, langs.Limit)
}

func TestList_BadQuery(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/v1/countries?limit=1000",
		"/api/v1/countries?filter=notjson",
		"/api/v1/countries?expr=" + url.QueryEscape("name +"),
		"/api/v1/countries?orderBy=population",
	} {
		w := s.get(t, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, apperror.CodeValidation, decode[dto.ErrorResponse](t, w).Code, path)
	}
}

func TestConvert(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/convert/country/gb?to=numeric")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.CodeResponse{Domain: "country", Form: "numeric", Value: "826"}, decode[dto.CodeResponse](t, w))

	w = s.get(t, "/api/v1/convert/currency/978?to=alpha3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "EUR", decode[dto.CodeResponse](t, w).Value)

	w = s.get(t, "/api/v1/convert/language/en?to=numeric")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidCode, decode[dto.ErrorResponse](t, w).Code)

	w = s.get(t, "/api/v1/convert/country/gb?to=roman")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decode[dto.ErrorResponse](t, w).Code)
}

func TestRound(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/currencies/GBP/round?amount=12.345")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.RoundResponse{Currency: "GBP", Digits: 2, Amount: "12.35", MinorUnits: 1235}, decode[dto.RoundResponse](t, w))

	w = s.get(t, "/api/v1/currencies/GBP/round")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.get(t, "/api/v1/currencies/GBP/round?amount=1e30")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	got := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, apperror.CodeValidation, got.Code)
	assert.Equal(t, "amount out of range", got.Message)
}

func TestMeta(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/meta")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]metadata.EntityDef](t, w), 1)

	w = s.get(t, "/api/v1/meta/Currency")
	require.Equal(t, http.StatusOK, w.Code)
	def := decode[metadata.EntityDef](t, w)
	f, ok := def.Field("alpha3")
	require.True(t, ok)
	assert.Equal(t, metadata.TypeCode, f.Type)

	w = s.get(t, "/api/v1/meta/planet")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decode[dto.ErrorResponse](t, w).Code)
}

func TestDataset(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/v1/dataset")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	plain := decode[snapshot.Snapshot](t, w)
	assert.Equal(t, 249, plain.Counts.Countries)

	w = s.get(t, "/api/v1/dataset", "Accept-Encoding", "gzip, zstd")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zstd", w.Header().Get("Content-Encoding"))

	dec, err := zstd.NewReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer dec.Close()

	var s2 snapshot.Snapshot
	require.NoError(t, json.NewDecoder(dec).Decode(&s2))
	assert.Equal(t, plain.Version, s2.Version)
	assert.Len(t, s2.Currencies, 179)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/health/info")
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[dto.InfoResponse](t, w)
	assert.Equal(t, 183, info.Counts["languages"])
	assert.NotEmpty(t, info.DatasetVersion)

	s.get(t, "/api/v1/currencies/ZZZ")

	w = s.get(t, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `outcome="unknown_code"`)
	assert.Contains(t, body, `route="/api/v1/currencies/:code"`)
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t)
	s.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := s.get(t, "/boom", "X-Request-ID", "req-boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	got := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, apperror.CodeInternal, got.Code)
	assert.Equal(t, "req-boom", got.RequestID)
}
