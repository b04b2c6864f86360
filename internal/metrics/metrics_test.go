package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveValidation(t *testing.T) {
	m := New()

	m.ObserveValidation(true, "RUT válido.", time.Now())
	m.ObserveValidation(false, "Dígito verificador inválido.", time.Now())
	m.ObserveValidation(false, "Dígito verificador inválido.", time.Now())

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.Total)
	assert.Equal(t, int64(1), snap.Valid)
	assert.Equal(t, int64(2), snap.ByReason["Dígito verificador inválido."])

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("true")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("false")))
}

func TestCacheAndBatchCounters(t *testing.T) {
	m := New()

	m.RecordCacheHit(true)
	m.RecordCacheHit(false)
	m.RecordCacheHit(false)
	m.ObserveBatch(10)

	snap := m.Snapshot()
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(2), snap.CacheMisses)
	assert.Equal(t, int64(1), snap.Batches)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
}

func TestObserveRequestGroupsStatusCodes(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/v1/rut/:rut", http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/rut/:rut", http.StatusBadRequest, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/rut/:rut", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/rut/:rut", "4xx")))
}

func TestInstancesDoNotShareRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
