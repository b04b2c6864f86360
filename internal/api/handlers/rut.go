package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/clinicavet/rut-api/internal/models"
	"github.com/clinicavet/rut-api/internal/services"
	"github.com/clinicavet/rut-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RUTHandler handles RUT-related requests
type RUTHandler struct {
	rutService services.RUTServiceInterface
	logger     *logrus.Logger
}

// NewRUTHandler creates a new RUT handler
func NewRUTHandler(rutService services.RUTServiceInterface, logger *logrus.Logger) *RUTHandler {
	return &RUTHandler{
		rutService: rutService,
		logger:     logger,
	}
}

// GetRUT validates a RUT given in the path
// @Summary Validate a RUT
// @Description Validate a Chilean RUT with the modulus 11 check digit. Invalid RUTs are reported with valid=false, not as an HTTP error.
// @Tags RUT
// @Produce json
// @Param rut path string true "RUT with or without punctuation" example(12.345.678-5)
// @Success 200 {object} models.RUTResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/rut/{rut} [get]
func (h *RUTHandler) GetRUT(c *gin.Context) {
	h.validate(c, c.Param("rut"))
}

// ValidateRUT validates a RUT given in the request body
// @Summary Validate a RUT
// @Description Validate a Chilean RUT sent as JSON
// @Tags RUT
// @Accept json
// @Produce json
// @Param request body models.RUTRequest true "RUT to validate"
// @Success 200 {object} models.RUTResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/rut/validate [post]
func (h *RUTHandler) ValidateRUT(c *gin.Context) {
	var request models.RUTRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, err)
		return
	}

	h.validate(c, request.RUT)
}

func (h *RUTHandler) validate(c *gin.Context, rut string) {
	start := time.Now()
	requestID := c.GetString("request_id")

	result, err := h.rutService.Validate(c.Request.Context(), rut)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to validate RUT")

		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"Internal server error", utils.MsgRUTUnexpected, models.ErrorCodeInternalError, c.Request.URL.Path,
		))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"rut":        utils.MaskRUT(rut),
		"valid":      result.Valid,
		"cache":      result.Cache,
		"duration":   time.Since(start),
	}).Info("RUT validated")

	if result.Cache {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	c.JSON(http.StatusOK, result)
}

// ValidateBatch validates several RUTs
// @Summary Validate multiple RUTs
// @Description Validate a list of RUTs; results keep the request order
// @Tags RUT
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "RUTs to validate"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/rut/batch [post]
func (h *RUTHandler) ValidateBatch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var request models.BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, err)
		return
	}

	results, err := h.rutService.ValidateBatch(c.Request.Context(), request.RUTs)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"total":      len(request.RUTs),
			"error":      err.Error(),
		}).Warn("Batch validation rejected")

		switch {
		case errors.Is(err, services.ErrEmptyBatch):
			c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"Empty batch", "At least one RUT is required", models.ErrorCodeEmptyBatch, c.Request.URL.Path,
			))
		case errors.Is(err, services.ErrBatchTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse(
				"Batch too large", err.Error(), models.ErrorCodeBatchTooLarge, c.Request.URL.Path,
			))
		default:
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
				"Internal server error", utils.MsgRUTUnexpected, models.ErrorCodeInternalError, c.Request.URL.Path,
			))
		}
		return
	}

	validCount := 0
	for _, result := range results {
		if result.Valid {
			validCount++
		}
	}

	duration := time.Since(start)
	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      len(results),
		"valid":      validCount,
		"duration":   duration,
	}).Info("Batch validation completed")

	c.JSON(http.StatusOK, models.BatchResponse{
		Results:    results,
		Total:      len(results),
		Valid:      validCount,
		Invalid:    len(results) - validCount,
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now(),
	})
}

// FormatRUT returns the canonical form of a RUT
// @Summary Format a RUT
// @Description Return the punctuated form XX.XXX.XXX-D without validating
// @Tags RUT
// @Produce json
// @Param rut path string true "RUT" example(123456785)
// @Success 200 {object} models.FormatResponse
// @Router /api/v1/rut/{rut}/format [get]
func (h *RUTHandler) FormatRUT(c *gin.Context) {
	c.JSON(http.StatusOK, h.rutService.Format(c.Param("rut")))
}

// ExtractRUT splits a RUT into body and check digit
// @Summary Extract RUT parts
// @Description Return body and check digit without validating
// @Tags RUT
// @Produce json
// @Param rut path string true "RUT" example(12.345.678-5)
// @Success 200 {object} models.ExtractResponse
// @Router /api/v1/rut/{rut}/extract [get]
func (h *RUTHandler) ExtractRUT(c *gin.Context) {
	c.JSON(http.StatusOK, h.rutService.Extract(c.Param("rut")))
}

// CheckDigit computes the check digit of a body
// @Summary Compute check digit
// @Description Compute the modulus 11 check digit for a 7 or 8 digit body
// @Tags RUT
// @Produce json
// @Param body path string true "RUT body" example(12345678)
// @Success 200 {object} models.CheckDigitResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/rut/check-digit/{body} [get]
func (h *RUTHandler) CheckDigit(c *gin.Context) {
	result, err := h.rutService.CheckDigit(c.Param("body"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			"Invalid RUT body", utils.MsgRUTBodyLength, models.ErrorCodeInvalidBody, c.Request.URL.Path,
		))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExtractFromText finds valid RUTs in free text
// @Summary Find RUTs in text
// @Description Return the valid RUTs contained in a text, formatted
// @Tags RUT
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to scan"
// @Success 200 {object} models.TextResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/rut/extract-text [post]
func (h *RUTHandler) ExtractFromText(c *gin.Context) {
	var request models.TextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.rutService.FindInText(request.Text))
}

func (h *RUTHandler) badRequest(c *gin.Context, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Warn("Invalid request format")

	c.JSON(http.StatusBadRequest, models.NewErrorResponse(
		"Invalid request format", err.Error(), models.ErrorCodeInvalidRequest, c.Request.URL.Path,
	))
}
