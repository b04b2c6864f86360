package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clinicavet/rut-api/internal/config"
	"github.com/clinicavet/rut-api/internal/metrics"
	"github.com/clinicavet/rut-api/internal/models"
	"github.com/clinicavet/rut-api/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyBatch    = errors.New("batch contains no RUTs")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
	ErrInvalidBody   = errors.New("RUT body must be 7 or 8 digits")
)

// RUTService implements RUT validation on top of the utils package
type RUTService struct {
	config  config.RUTConfig
	cache   CacheServiceInterface
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

// NewRUTService creates a new RUT service
func NewRUTService(cfg config.RUTConfig, cache CacheServiceInterface, m *metrics.Metrics, logger *logrus.Logger) *RUTService {
	return &RUTService{
		config:  cfg,
		cache:   cache,
		metrics: m,
		logger:  logger,
	}
}

// CacheKey returns the cache key for a raw RUT. Inputs that format the
// same share an entry.
func CacheKey(rut string) string {
	return KeyPrefix + utils.FormatRUT(rut)
}

// Validate validates a single RUT. Invalid RUTs are not an error; the
// returned error only reports a cancelled context.
func (s *RUTService) Validate(ctx context.Context, rut string) (*models.RUTResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := CacheKey(rut)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var response models.RUTResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			s.metrics.RecordCacheHit(true)
			s.metrics.ObserveValidation(response.Valid, response.Message, start)
			response.RUT = rut
			response.Cache = true
			return &response, nil
		}
		s.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal cached RUT validation")
	} else if !errors.Is(err, ErrCacheMiss) {
		s.logger.WithError(err).WithField("key", key).Warn("Cache lookup failed")
	}
	s.metrics.RecordCacheHit(false)

	result := utils.ValidateRUT(rut)
	response := &models.RUTResponse{
		RUT:         rut,
		Formatted:   result.Formatted,
		Body:        utils.ExtractRUTBody(rut),
		CheckDigit:  utils.ExtractRUTCheckDigit(rut),
		Valid:       result.Valid,
		Message:     result.Message,
		ValidatedAt: time.Now(),
	}

	if encoded, err := json.Marshal(response); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("Failed to cache RUT validation")
		}
	}

	s.metrics.ObserveValidation(response.Valid, response.Message, start)
	return response, nil
}

// ValidateBatch validates every RUT concurrently, bounded by
// BatchConcurrency. Results keep the input order.
func (s *RUTService) ValidateBatch(ctx context.Context, ruts []string) ([]models.RUTResponse, error) {
	if len(ruts) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(ruts) > s.config.BatchMaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ruts), s.config.BatchMaxSize)
	}

	s.metrics.ObserveBatch(len(ruts))
	results := make([]models.RUTResponse, len(ruts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.BatchConcurrency)

	for i, rut := range ruts {
		i, rut := i, rut
		g.Go(func() error {
			response, err := s.Validate(gctx, rut)
			if err != nil {
				return err
			}
			results[i] = *response
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch validation: %w", err)
	}

	return results, nil
}

// Format returns the canonical punctuated form
func (s *RUTService) Format(rut string) models.FormatResponse {
	return models.FormatResponse{
		RUT:       rut,
		Formatted: utils.FormatRUT(rut),
	}
}

// Extract splits a RUT into body and check digit without validating
func (s *RUTService) Extract(rut string) models.ExtractResponse {
	return models.ExtractResponse{
		RUT:        rut,
		Body:       utils.ExtractRUTBody(rut),
		CheckDigit: utils.ExtractRUTCheckDigit(rut),
	}
}

// CheckDigit computes the check digit for a body given with or without
// thousands separators
func (s *RUTService) CheckDigit(body string) (*models.CheckDigitResponse, error) {
	digits := utils.CleanRUT(body)
	if len(digits) < 7 || len(digits) > 8 || !isDigits(digits) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBody, body)
	}

	checkDigit := utils.CalculateCheckDigit(digits)
	return &models.CheckDigitResponse{
		Body:       digits,
		CheckDigit: checkDigit,
		Formatted:  utils.FormatRUT(digits + checkDigit),
	}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FindInText returns the valid RUTs contained in free text, formatted
func (s *RUTService) FindInText(text string) models.TextResponse {
	found := utils.ExtractRUTFromText(text)

	ruts := make([]string, 0, len(found))
	for _, rut := range found {
		ruts = append(ruts, utils.FormatRUT(rut))
	}

	return models.TextResponse{
		RUTs:  ruts,
		Total: len(ruts),
	}
}

// Health returns service health status
func (s *RUTService) Health() map[string]interface{} {
	// Known-good RUT as a self check of the checksum path
	if !utils.IsValidRUT("12.345.678-5") {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "checksum self-test failed",
		}
	}

	return map[string]interface{}{
		"status":            "healthy",
		"batch_max_size":    s.config.BatchMaxSize,
		"batch_concurrency": s.config.BatchConcurrency,
		"cache_ttl":         s.config.CacheTTL.String(),
	}
}
