package errors

import (
	"fmt"
	"net/http"
	"strings"

	"greengrocer/internal/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
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

// Is matches any BaseError carrying the same error code, so a copy produced by
// WithDetails still matches its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// ErrReferenceConflict is returned when the store refuses a write because of a
	// foreign key, e.g. deleting a customer that orders still reference.
	ErrReferenceConflict = NewBaseError(
		http.StatusConflict,
		"REFERENCE_CONFLICT",
		"The record is referenced by other records",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Entity type names used in not-found errors.
const (
	EntityCustomer  = "customer"
	EntityVegetable = "vegetable"
	EntityOrder     = "order"
)

// NotFoundError reports that no record of EntityType exists with the given ID.
type NotFoundError struct {
	EntityType string
	ID         string
}

// NewNotFoundError creates a not-found error for the given entity type and id.
func NewNotFoundError(entityType string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{
		EntityType: entityType,
		ID:         id.String(),
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.EntityType, e.ID)
}

// HTTPCode returns the HTTP status code
func (e *NotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

// ErrorCode returns the business error code, e.g. "CUSTOMER_NOT_FOUND"
func (e *NotFoundError) ErrorCode() string {
	return strings.ToUpper(e.EntityType) + "_NOT_FOUND"
}

// Message returns the user-friendly error message
func (e *NotFoundError) Message() string {
	return capitalize(e.EntityType) + " not found"
}

// Details names the missing id
func (e *NotFoundError) Details() string {
	return e.Error()
}

// IsNotFound reports whether err is a NotFoundError for entityType. An empty
// entityType matches any entity.
func IsNotFound(err error, entityType string) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}

	return entityType == "" || nf.EntityType == entityType
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "The data store is unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
