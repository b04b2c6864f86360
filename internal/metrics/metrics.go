package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for RUT validation.
// Prometheus collectors feed /metrics/prometheus; the atomic counters back
// the JSON snapshot served on /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	BatchSize          prometheus.Histogram
	CacheLookups       *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec

	total       atomic.Int64
	valid       atomic.Int64
	batches     atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64

	mu       sync.RWMutex
	byReason map[string]int64
}

// New creates a new Metrics instance with its own registry so that several
// instances can coexist in tests.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rut_validations_total",
			Help: "Total number of RUT validations by outcome",
		}, []string{"valid"}),
		ValidationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rut_validation_duration_seconds",
			Help:    "Duration of single RUT validations including cache lookups",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rut_batch_size",
			Help:    "Number of RUTs per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rut_cache_lookups_total",
			Help: "Validation cache lookups by result",
		}, []string{"result"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rut_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rut_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		byReason: make(map[string]int64),
	}
}

// ObserveValidation records one validation outcome and its duration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveValidation(valid bool, reason string, start time.Time) {
	m.total.Add(1)
	if valid {
		m.valid.Add(1)
		m.ValidationsTotal.WithLabelValues("true").Inc()
	} else {
		m.ValidationsTotal.WithLabelValues("false").Inc()
	}
	m.ValidationDuration.Observe(time.Since(start).Seconds())

	m.mu.Lock()
	m.byReason[reason]++
	m.mu.Unlock()
}

// ObserveBatch records the size of a batch request
func (m *Metrics) ObserveBatch(size int) {
	m.batches.Add(1)
	m.BatchSize.Observe(float64(size))
}

// RecordCacheHit records a cache lookup result
func (m *Metrics) RecordCacheHit(hit bool) {
	if hit {
		m.cacheHits.Add(1)
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheMisses.Add(1)
	m.CacheLookups.WithLabelValues("miss").Inc()
}

// ObserveRequest records a served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Total       int64
	Valid       int64
	Batches     int64
	CacheHits   int64
	CacheMisses int64
	ByReason    map[string]int64
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	byReason := make(map[string]int64, len(m.byReason))
	for reason, count := range m.byReason {
		byReason[reason] = count
	}
	m.mu.RUnlock()

	return Snapshot{
		Total:       m.total.Load(),
		Valid:       m.valid.Load(),
		Batches:     m.batches.Load(),
		CacheHits:   m.cacheHits.Load(),
		CacheMisses: m.cacheMisses.Load(),
		ByReason:    byReason,
	}
}
