package handlers

import (
	"net/http"
	"time"

	"github.com/clinicavet/rut-api/internal/models"
	"github.com/clinicavet/rut-api/internal/services"
	"github.com/clinicavet/rut-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get validation cache statistics
// @Tags Cache
// @Produce json
// @Security AdminToken
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"Internal server error", "Failed to retrieve cache statistics", models.ErrorCodeCacheError, c.Request.URL.Path,
		))
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"stats":     stats,
		"timestamp": time.Now(),
		"health":    h.cacheService.Health(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Clear all cached RUT validations
// @Tags Cache
// @Produce json
// @Security AdminToken
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"Internal server error", "Failed to clear cache", models.ErrorCodeCacheError, c.Request.URL.Path,
		))
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared successfully")

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Cache cleared successfully",
		"timestamp": time.Now(),
		"success":   true,
	})
}

// Delete handles specific cache entry deletion
// @Summary Delete specific RUT from cache
// @Description Delete the cached validation of one RUT
// @Tags Cache
// @Param rut path string true "RUT to delete from cache"
// @Produce json
// @Security AdminToken
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/{rut} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	requestID := c.GetString("request_id")
	rut := c.Param("rut")
	cacheKey := services.CacheKey(rut)

	exists, err := h.cacheService.Exists(c.Request.Context(), cacheKey)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check cache key existence")

		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"Internal server error", "Failed to check cache", models.ErrorCodeCacheError, c.Request.URL.Path,
		))
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			"Not found", "RUT not found in cache", models.ErrorCodeNotInCache, c.Request.URL.Path,
		))
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), cacheKey); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete RUT from cache")

		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"Internal server error", "Failed to delete from cache", models.ErrorCodeCacheError, c.Request.URL.Path,
		))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"rut":        utils.MaskRUT(rut),
	}).Info("RUT deleted from cache")

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "RUT deleted from cache successfully",
		"rut":       utils.FormatRUT(rut),
		"timestamp": time.Now(),
		"success":   true,
	})
}
