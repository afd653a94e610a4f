package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation            ErrorType = "VALIDATION"
	ErrorTypeNotFound              ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized          ErrorType = "UNAUTHORIZED"
	ErrorTypeReferentialIntegrity  ErrorType = "REFERENTIAL_INTEGRITY"
	ErrorTypeSameOriginDestination ErrorType = "SAME_ORIGIN_DESTINATION"

	// Auth errors
	ErrorTypeInvalidCredentials   ErrorType = "INVALID_CREDENTIALS"
	ErrorTypeDuplicateCredentials ErrorType = "DUPLICATE_CREDENTIALS"

	// Application errors
	ErrorTypeEvents   ErrorType = "EVENTS"
	ErrorTypeInternal ErrorType = "INTERNAL"

	// Infrastructure errors
	ErrorTypeStorage ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// captureStackTrace captures the current stack trace
func captureStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := ""
	for {
		frame, more := frames.Next()
		stack += fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return stack
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Code:       "Validation",
		HTTPStatus: http.StatusBadRequest,
		StackTrace: captureStackTrace(),
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		StackTrace: captureStackTrace(),
	}
}

// NewOfferNotFoundError creates a not found error for a missing offer
func NewOfferNotFoundError(id string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("offer with id %s not found", id),
		Code:       "OfferNotFound",
		HTTPStatus: http.StatusNotFound,
		StackTrace: captureStackTrace(),
	}
}

// NewSpecialOfferNotFoundError creates a not found error for a missing special offer
func NewSpecialOfferNotFoundError(id string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("special offer with id %s not found", id),
		Code:       "SpecialOfferNotFound",
		HTTPStatus: http.StatusNotFound,
		StackTrace: captureStackTrace(),
	}
}

// NewPurchasedTravelNotFoundError creates a not found error for a missing purchased travel
func NewPurchasedTravelNotFoundError(id string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("purchased travel with id %s not found", id),
		Code:       "PurchasedTravelNotFound",
		HTTPStatus: http.StatusNotFound,
		StackTrace: captureStackTrace(),
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		Code:       "Unauthorized",
		HTTPStatus: http.StatusUnauthorized,
		StackTrace: captureStackTrace(),
	}
}

// NewReferentialIntegrityError creates a referential integrity error
func NewReferentialIntegrityError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeReferentialIntegrity,
		Message:    message,
		Code:       "ReferentialIntegrity",
		HTTPStatus: http.StatusConflict,
		StackTrace: captureStackTrace(),
	}
}

// NewSameOriginDestinationError creates a same origin/destination error
func NewSameOriginDestinationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeSameOriginDestination,
		Message:    message,
		Code:       "Travel.SameOriginDestination",
		HTTPStatus: http.StatusBadRequest,
		StackTrace: captureStackTrace(),
	}
}

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidCredentials,
		Message:    message,
		Code:       "Auth.InvalidCredentials",
		HTTPStatus: http.StatusUnauthorized,
		StackTrace: captureStackTrace(),
	}
}

// NewDuplicateCredentialsError creates a duplicate credentials error
func NewDuplicateCredentialsError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeDuplicateCredentials,
		Message:    message,
		Code:       "Auth.DuplicateCredentials",
		HTTPStatus: http.StatusConflict,
		StackTrace: captureStackTrace(),
	}
}

// NewEventsError creates an events configuration error
func NewEventsError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeEvents,
		Message:    message,
		Code:       "Events",
		HTTPStatus: http.StatusInternalServerError,
		StackTrace: captureStackTrace(),
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		StackTrace: captureStackTrace(),
	}
}

// NewStorageError creates a storage error
func NewStorageError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Message:    fmt.Sprintf("storage operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
		StackTrace: captureStackTrace(),
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsCode checks if an error carries a specific code
func IsCode(err error, code string) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	return IsType(err, ErrorTypeUnauthorized)
}

// IsReferentialIntegrity checks if an error is a referential integrity error
func IsReferentialIntegrity(err error) bool {
	return IsType(err, ErrorTypeReferentialIntegrity)
}

// IsSameOriginDestination checks if an error is a same origin/destination error
func IsSameOriginDestination(err error) bool {
	return IsType(err, ErrorTypeSameOriginDestination)
}

// IsInvalidCredentials checks if an error is an invalid credentials error
func IsInvalidCredentials(err error) bool {
	return IsType(err, ErrorTypeInvalidCredentials)
}

// IsDuplicateCredentials checks if an error is a duplicate credentials error
func IsDuplicateCredentials(err error) bool {
	return IsType(err, ErrorTypeDuplicateCredentials)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
