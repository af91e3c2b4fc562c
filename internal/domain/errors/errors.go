package errors

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// AppError is a failure that knows how it should surface at the HTTP boundary.
type AppError interface {
	error
	Name() string      // Human name, turned into the envelope code by Code
	HTTPCode() int     // HTTP status code, 0 means 500
	Message() string   // Client-facing message
	Operational() bool // Anticipated by business logic; message is safe to show
}

// Code turns an error name into an envelope code: "Not Found" -> "NOT_FOUND".
func Code(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "_")
}

// BaseError is a basic AppError.
type BaseError struct {
	name        string
	httpCode    int
	message     string
	operational bool
}

// NewBaseError creates a new base error
func NewBaseError(name string, httpCode int, message string, operational bool) *BaseError {
	return &BaseError{
		name:        name,
		httpCode:    httpCode,
		message:     message,
		operational: operational,
	}
}

// NewNotFoundError creates an operational 404 error
func NewNotFoundError(message string) *BaseError {
	return NewBaseError("Not Found", http.StatusNotFound, message, true)
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) Name() string {
	return e.name
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Operational() bool {
	return e.operational
}

// Predefined error types
var (
	ErrProductNotFound = NewNotFoundError("Product not found")

	ErrInternalError = NewBaseError("Internal Error", http.StatusInternalServerError, "Internal Server Error", false)
)

// ConnectionError reports that the database pool could not be established.
type ConnectionError struct {
	err error
}

// NewConnectionError wraps the driver failure behind a connection error
func NewConnectionError(err error) *ConnectionError {
	return &ConnectionError{err: errors.WithStack(err)}
}

func (e *ConnectionError) Error() string {
	return errors.Wrap(e.err, "failed to establish database connection").Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.err
}

func (e *ConnectionError) Name() string {
	return "Connection Error"
}

func (e *ConnectionError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *ConnectionError) Message() string {
	return "Failed to establish database connection."
}

func (e *ConnectionError) Operational() bool {
	return false
}

// DatabaseExecuteError represents a failed stored-procedure call, implementing the AppError interface
type DatabaseExecuteError struct {
	procedure string
	err       error
}

// NewDatabaseExecuteError wraps err raised while executing procedure
func NewDatabaseExecuteError(procedure string, err error) *DatabaseExecuteError {
	return &DatabaseExecuteError{
		procedure: procedure,
		err:       errors.WithStack(err),
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "error executing stored procedure %s", e.procedure).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Procedure returns the name of the procedure that failed
func (e *DatabaseExecuteError) Procedure() string {
	return e.procedure
}

func (e *DatabaseExecuteError) Name() string {
	return "Database Error"
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Operational() bool {
	return false
}
