// Package errors defines the application-level error contract shared by
// the scheduling engine and its HTTP delivery.
package errors

import (
	"net/http"

	"gearpool/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"location not found",
		"",
	)

	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVATION_NOT_FOUND",
		"reservation not found",
		"",
	)

	ErrIncidentNotFound = NewBaseError(
		http.StatusNotFound,
		"INCIDENT_NOT_FOUND",
		"incident not found",
		"",
	)

	ErrPoolNotFound = NewBaseError(
		http.StatusInternalServerError,
		"POOL_NOT_FOUND",
		"pool location is not configured in the record store",
		"",
	)

	// Scheduling errors
	ErrInvalidRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RANGE",
		"start date must not be after end date",
		"",
	)

	ErrDeviceNotAssigned = NewBaseError(
		http.StatusConflict,
		"DEVICE_NOT_ASSIGNED",
		"device is not assigned to this reservation",
		"",
	)

	// Returning a device from a reservation without a check-in would lose
	// the audit record, so the plain assign operation refuses it.
	ErrCheckInRequired = NewBaseError(
		http.StatusConflict,
		"CHECK_IN_REQUIRED",
		"device must be checked in before returning to the pool",
		"",
	)

	// ErrInconsistentCheckIn marks the window where the audit record was
	// written but the pool reassignment failed. Retrying the check-in
	// resumes at the reassignment without duplicating the record.
	ErrInconsistentCheckIn = NewBaseError(
		http.StatusConflict,
		"CHECK_IN_INCONSISTENT",
		"audit record written but device was not returned to the pool",
		"",
	)

	ErrInconsistentResolve = NewBaseError(
		http.StatusConflict,
		"RESOLVE_INCONSISTENT",
		"resolved copy written but active incident was not archived",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// ExternalWriteError represents a failed write against the record store,
// implementing the AppError interface.
type ExternalWriteError struct {
	err     error
	details string
}

// NewExternalWriteError creates a record-store write error
func NewExternalWriteError(err error, details string) AppError {
	return &ExternalWriteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *ExternalWriteError) Error() string {
	return errors.Wrap(e.err, "record store write failed").Error()
}

// Unwrap exposes the underlying store error
func (e *ExternalWriteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ExternalWriteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ExternalWriteError) ErrorCode() string {
	return "EXTERNAL_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *ExternalWriteError) Message() string {
	return "record store write failed"
}

// Details returns detailed error information
func (e *ExternalWriteError) Details() string {
	return e.details
}
