package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicavet/rut-api/internal/config"
	"github.com/clinicavet/rut-api/internal/logger"
	"github.com/clinicavet/rut-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	rec := serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, rec.Header().Get("X-Request-ID"), rec.Body.String())

	rec = serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRecoveryUsesRUTMessageOnRUTRoutes(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.Discard()))
	r.GET("/api/v1/rut/:rut", func(c *gin.Context) { panic("boom") })
	r.GET("/other", func(c *gin.Context) { panic("boom") })

	rec := serve(r, http.MethodGet, "/api/v1/rut/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al validar RUT")
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")

	rec = serve(r, http.MethodGet, "/other", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowedOrigins: []string{"https://clinica.cl"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(r, http.MethodOptions, "/", map[string]string{"Origin": "https://clinica.cl"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://clinica.cl", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))

	rec = serve(r, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(Security())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestAdminAuth(t *testing.T) {
	r := gin.New()
	r.GET("/open", AdminAuth(""), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/closed", AdminAuth("s3cret"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/open", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/closed", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/closed", map[string]string{"X-Admin-Token": "nope"}).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/closed", map[string]string{"X-Admin-Token": "s3cret"}).Code)
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerMinute: 1,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
	})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)

	rec := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")

	assert.Equal(t, 1, rl.GetStats()["active_clients"])
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         1,
		CleanupInterval:   time.Hour,
	})
	defer rl.Stop()

	rl.getLimiter("10.0.0.1")
	rl.evictIdle(time.Now().Add(time.Second))

	assert.Equal(t, 0, rl.GetStats()["active_clients"])
}

func TestMetricsCountsRequests(t *testing.T) {
	m := metrics.New()

	r := gin.New()
	r.Use(Recovery(logger.Discard()))
	r.Use(Metrics(m))
	r.GET("/api/v1/rut/:rut", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/rut/123456785", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/missing", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/boom", nil).Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/rut/:rut", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "4xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "5xx")))
}
