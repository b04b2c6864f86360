package handlers

import (
	"net/http"
	"time"

	"github.com/clinicavet/rut-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Version is reported by health and liveness probes
const Version = "1.0.0"

// HealthChecker reports the health of each service by name
type HealthChecker interface {
	Health() map[string]interface{}
}

// HealthHandler handles health check requests
type HealthHandler struct {
	services  HealthChecker
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(services HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		services:  services,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	start := time.Now()
	servicesHealth := h.services.Health()
	elapsed := time.Since(start)

	status := overallStatus(servicesHealth)

	response := models.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   Version,
		Services:  make(map[string]models.ServiceInfo, len(servicesHealth)),
		Uptime:    time.Since(h.startTime).String(),
	}

	for serviceName, serviceHealth := range servicesHealth {
		healthMap, ok := serviceHealth.(map[string]interface{})
		if !ok {
			continue
		}

		info := models.ServiceInfo{
			LastCheck:      time.Now(),
			ResponseTimeMs: elapsed.Milliseconds(),
		}
		if serviceStatus, ok := healthMap["status"].(string); ok {
			info.Status = serviceStatus
		}
		if errorMsg, ok := healthMap["error"].(string); ok {
			info.Error = errorMsg
		}

		response.Services[serviceName] = info
	}

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		h.logger.WithField("services", servicesHealth).Warn("Health check failed")
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Check if the API is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	servicesHealth := h.services.Health()

	issues := make([]string, 0)
	for serviceName, serviceHealth := range servicesHealth {
		if healthMap, ok := serviceHealth.(map[string]interface{}); ok && healthMap["status"] == "unhealthy" {
			issues = append(issues, serviceName+" service is unhealthy")
		}
	}

	ready := len(issues) == 0
	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  servicesHealth,
	}
	if !ready {
		response["issues"] = issues
	}

	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Description Check if the API is alive and responding
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startTime).String(),
		"version":   Version,
	})
}

// overallStatus is unhealthy if any service is, else degraded if any is
func overallStatus(servicesHealth map[string]interface{}) string {
	status := "healthy"
	for _, serviceHealth := range servicesHealth {
		healthMap, ok := serviceHealth.(map[string]interface{})
		if !ok {
			continue
		}
		switch healthMap["status"] {
		case "unhealthy":
			return "unhealthy"
		case "degraded":
			status = "degraded"
		}
	}
	return status
}
