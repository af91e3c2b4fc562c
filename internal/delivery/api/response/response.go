// Package response builds the JSON envelope every API response is wrapped in.
package response

import (
	"time"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TimestampLayout is ISO-8601 in UTC with milliseconds, e.g. 2024-05-01T12:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Metadata is the free-form metadata object of a success envelope
type Metadata map[string]any

// SuccessEnvelope defines the structure for successful responses
type SuccessEnvelope struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// ErrorEnvelope defines the structure for error responses
type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	Error     ErrorInfo `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_ERROR"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Violations, or diagnostics outside production
}

// Timestamp formats t the way every envelope does.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewSuccess wraps data. The metadata always carries a timestamp; a caller-supplied
// "timestamp" key is overwritten.
func NewSuccess(data any, metadata Metadata, now time.Time) SuccessEnvelope {
	meta := make(Metadata, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["timestamp"] = Timestamp(now)

	return SuccessEnvelope{
		Success:  true,
		Data:     data,
		Metadata: meta,
	}
}

// NewError builds an error envelope. A nil details is left out of the JSON.
func NewError(code, message string, details any, now time.Time) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error: ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: Timestamp(now),
	}
}

// Success writes a success envelope, adding the request ID to the metadata
func Success(c echo.Context, statusCode int, data any, metadata Metadata) error {
	envelope := NewSuccess(data, metadata, time.Now())
	if requestID := deliverycontext.GetRequestID(c); requestID != "" {
		envelope.Metadata["requestId"] = requestID
	}

	return c.JSON(statusCode, envelope)
}

// Error writes an error envelope
func Error(c echo.Context, statusCode int, code string, message string, details any) error {
	return c.JSON(statusCode, NewError(code, message, details, time.Now()))
}
