package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
)

func counterValue(t *testing.T, m *Metrics, domain, outcome string) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Lookups.WithLabelValues(domain, outcome).Write(&out))
	return out.GetCounter().GetValue()
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeInvalid, Outcome(apperror.NewInvalidCode("country", "alpha2", "X1")))
	assert.Equal(t, OutcomeUnknown, Outcome(apperror.NewUnknownCode("country", "alpha2", "ZZ")))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestRecordLookup(t *testing.T) {
	m := New()
	m.RecordLookup("country", nil)
	m.RecordLookup("country", nil)
	m.RecordLookup("country", apperror.NewUnknownCode("country", "alpha2", "ZZ"))

	assert.Equal(t, 2.0, counterValue(t, m, "country", OutcomeOK))
	assert.Equal(t, 1.0, counterValue(t, m, "country", OutcomeUnknown))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLookup("country", nil)
		m.ObserveRequest("GET", "/x", 200, time.Millisecond)
		m.SetCatalogueSize("country", 1)
	})
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.SetCatalogueSize("currency", 179)
	m.ObserveRequest("GET", "/api/v1/currencies/:code", 200, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `isoref_catalogue_entities{domain="currency"} 179`)
	assert.Contains(t, string(body), `isoref_http_request_duration_seconds_count{method="GET",route="/api/v1/currencies/:code",status="200"} 1`)
}
