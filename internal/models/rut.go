package models

import (
	"time"
)

// RUTRequest represents a single RUT validation request
type RUTRequest struct {
	RUT string `json:"rut" example:"12.345.678-5"`
}

// RUTResponse represents the outcome of validating one RUT
type RUTResponse struct {
	RUT         string    `json:"rut" example:"12345678-5"`
	Formatted   string    `json:"formatted" example:"12.345.678-5"`
	Body        string    `json:"body" example:"12345678"`
	CheckDigit  string    `json:"check_digit" example:"5"`
	Valid       bool      `json:"valid" example:"true"`
	Message     string    `json:"message" example:"RUT válido."`
	ValidatedAt time.Time `json:"validated_at" example:"2024-01-15T10:30:00Z"`
	Cache       bool      `json:"cache" example:"false"`
}

// FormatResponse represents the canonical form of a RUT
type FormatResponse struct {
	RUT       string `json:"rut" example:"123456785"`
	Formatted string `json:"formatted" example:"12.345.678-5"`
}

// ExtractResponse represents the parts of a RUT without validation
type ExtractResponse struct {
	RUT        string `json:"rut" example:"12.345.678-5"`
	Body       string `json:"body" example:"12345678"`
	CheckDigit string `json:"check_digit" example:"5"`
}

// CheckDigitResponse represents a computed check digit
type CheckDigitResponse struct {
	Body       string `json:"body" example:"12345678"`
	CheckDigit string `json:"check_digit" example:"5"`
	Formatted  string `json:"formatted" example:"12.345.678-5"`
}

// TextRequest carries free text to scan for RUTs
type TextRequest struct {
	Text string `json:"text" binding:"required" example:"Tutor 12.345.678-5, hora 10:30"`
}

// TextResponse lists the valid RUTs found in a text
type TextResponse struct {
	RUTs  []string `json:"ruts" example:"12.345.678-5"`
	Total int      `json:"total" example:"1"`
}

// BatchRequest represents a batch RUT validation request
type BatchRequest struct {
	RUTs []string `json:"ruts" binding:"required" example:"12.345.678-5,7.654.321-6"`
}

// BatchResponse represents a batch RUT validation response
type BatchResponse struct {
	Results    []RUTResponse `json:"results"`
	Total      int           `json:"total" example:"2"`
	Valid      int           `json:"valid" example:"2"`
	Invalid    int           `json:"invalid" example:"0"`
	DurationMs int64         `json:"duration_ms" example:"3"`
	Timestamp  time.Time     `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Invalid request format"`
	Message   string    `json:"message" example:"Key: 'RUTRequest.RUT' Error:Field validation for 'RUT' failed on the 'required' tag"`
	Code      string    `json:"code,omitempty" example:"INVALID_REQUEST"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path" example:"/api/v1/rut/validate"`
}

// Error codes returned in ErrorResponse.Code
const (
	ErrorCodeInvalidRequest   = "INVALID_REQUEST"
	ErrorCodeInvalidBody      = "INVALID_BODY"
	ErrorCodeEmptyBatch       = "EMPTY_BATCH"
	ErrorCodeBatchTooLarge    = "BATCH_TOO_LARGE"
	ErrorCodeNotInCache       = "RUT_NOT_IN_CACHE"
	ErrorCodeCacheError       = "CACHE_ERROR"
	ErrorCodeInternalError    = "INTERNAL_ERROR"
	ErrorCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
	ErrorCodeUnauthorized     = "UNAUTHORIZED"
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// NewErrorResponse builds an ErrorResponse stamped with the current time
func NewErrorResponse(err, message, code, path string) ErrorResponse {
	return ErrorResponse{
		Error:     err,
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
		Path:      path,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status         string    `json:"status" example:"healthy"`
	LastCheck      time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	ResponseTimeMs int64     `json:"response_time_ms" example:"2"`
	Error          string    `json:"error,omitempty"`
}

// MetricsResponse represents metrics response
type MetricsResponse struct {
	Validations ValidationMetrics `json:"validations"`
	Cache       CacheMetrics      `json:"cache"`
	System      SystemMetrics     `json:"system"`
	Timestamp   time.Time         `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ValidationMetrics represents validation counters
type ValidationMetrics struct {
	Total     int64            `json:"total" example:"1500"`
	Valid     int64            `json:"valid" example:"1450"`
	Invalid   int64            `json:"invalid" example:"50"`
	ValidRate float64          `json:"valid_rate" example:"96.67"`
	ByReason  map[string]int64 `json:"by_reason"`
	Batches   int64            `json:"batches" example:"12"`
}

// CacheMetrics represents cache metrics
type CacheMetrics struct {
	HitRate float64 `json:"hit_rate" example:"85.5"`
	Hits    int64   `json:"hits" example:"1240"`
	Misses  int64   `json:"misses" example:"210"`
	Size    int64   `json:"size" example:"15000"`
}

// SystemMetrics represents system metrics
type SystemMetrics struct {
	MemoryUsage float64 `json:"memory_usage" example:"12.5"`
	Goroutines  int     `json:"goroutines" example:"12"`
}
