package errors

import (
	"net/http"

	"sensorhub/internal/errors"
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
	// parent is the predefined error this one was derived from via WithDetails
	parent *BaseError
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is lets errors.Is match a detailed copy against its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.parent != nil && e.parent == t)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details that still matches e under errors.Is
func (e *BaseError) WithDetails(details string) *BaseError {
	root := e
	if e.parent != nil {
		root = e.parent
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    root,
	}
}

// Predefined error types
var (
	// Ingestion errors
	ErrMalformedPayload = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_PAYLOAD",
		"Malformed reading",
		"",
	)

	// ErrUnknownDevice and ErrBadCredential render identically so a caller
	// cannot probe which device ids exist.
	ErrUnknownDevice = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_DEVICE_CREDENTIALS",
		"Invalid device credentials",
		"",
	)

	ErrBadCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_DEVICE_CREDENTIALS",
		"Invalid device credentials",
		"",
	)

	// Read-side errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrReadingNotFound = NewBaseError(
		http.StatusNotFound,
		"READING_NOT_FOUND",
		"No data for this device",
		"",
	)

	ErrRangeTooWide = NewBaseError(
		http.StatusBadRequest,
		"RANGE_TOO_WIDE",
		"Requested day range is too wide",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// ErrStoreUnavailable is the sentinel matched by every StoreUnavailableError.
var ErrStoreUnavailable = errors.New("store unavailable")

// StoreUnavailableError reports that the durable medium rejected or could not
// serve an operation. A write that fails this way was not persisted.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError wraps a storage failure
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, "store unavailable: "+e.details).Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

func (e *StoreUnavailableError) Message() string {
	return "Reading store unavailable, retry later"
}

func (e *StoreUnavailableError) Details() string {
	return e.details
}
