package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/clinicavet/rut-api/internal/metrics"
	"github.com/clinicavet/rut-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	metrics   *metrics.Metrics
	cacheSize func() int
	logger    *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler. cacheSize reports the
// current number of cached validations.
func NewMetricsHandler(m *metrics.Metrics, cacheSize func() int, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics:   m,
		cacheSize: cacheSize,
		logger:    logger,
	}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Get validation, cache and runtime statistics
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.MetricsResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.logger.WithField("request_id", c.GetString("request_id")).Debug("Getting application metrics")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snap := h.metrics.Snapshot()

	response := models.MetricsResponse{
		Validations: models.ValidationMetrics{
			Total:     snap.Total,
			Valid:     snap.Valid,
			Invalid:   snap.Total - snap.Valid,
			ValidRate: percentage(snap.Valid, snap.Total),
			ByReason:  snap.ByReason,
			Batches:   snap.Batches,
		},
		Cache: models.CacheMetrics{
			HitRate: percentage(snap.CacheHits, snap.CacheHits+snap.CacheMisses),
			Hits:    snap.CacheHits,
			Misses:  snap.CacheMisses,
			Size:    int64(h.cacheSize()),
		},
		System: models.SystemMetrics{
			MemoryUsage: float64(m.Alloc) / 1024 / 1024, // MB
			Goroutines:  runtime.NumGoroutine(),
		},
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// Prometheus serves the Prometheus exposition format
// @Summary Prometheus metrics
// @Description Metrics in the Prometheus text exposition format
// @Tags Metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics/prometheus [get]
func (h *MetricsHandler) Prometheus() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}))
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
