package services

import (
	"context"

	"github.com/clinicavet/rut-api/internal/models"
)

// RUTServiceInterface defines the interface for RUT validation service
type RUTServiceInterface interface {
	// Validate validates a single RUT, consulting the cache first
	Validate(ctx context.Context, rut string) (*models.RUTResponse, error)

	// ValidateBatch validates several RUTs preserving input order
	ValidateBatch(ctx context.Context, ruts []string) ([]models.RUTResponse, error)

	// Format returns the canonical punctuated form
	Format(rut string) models.FormatResponse

	// Extract splits a RUT into body and check digit without validating
	Extract(rut string) models.ExtractResponse

	// CheckDigit computes the check digit for a 7 or 8 digit body
	CheckDigit(body string) (*models.CheckDigitResponse, error)

	// FindInText returns the valid RUTs contained in free text
	FindInText(text string) models.TextResponse

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}
