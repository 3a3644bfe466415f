package errors

import (
	"net/http"
	"testing"

	"greengrocer/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("fullName is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrReferenceConflict))
	assert.Equal(t, "Request validation failed: fullName is required", err.Error())
	assert.Equal(t, "fullName is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "the sentinel must not be mutated")

	wrapped := errors.Wrap(err, "create customer")
	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
}

func TestNotFoundError(t *testing.T) {
	id := uuid.MustParse("0190a5f2-0000-7000-8000-000000000001")
	err := NewNotFoundError(EntityVegetable, id)

	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "VEGETABLE_NOT_FOUND", err.ErrorCode())
	assert.Equal(t, "Vegetable not found", err.Message())
	assert.Equal(t, "vegetable "+id.String()+" not found", err.Details())

	wrapped := errors.Wrap(err, "create order")
	assert.True(t, IsNotFound(wrapped, EntityVegetable))
	assert.True(t, IsNotFound(wrapped, ""))
	assert.False(t, IsNotFound(wrapped, EntityCustomer))
	assert.False(t, IsNotFound(errors.New("boom"), ""))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
}

func TestDatabaseExecuteError_UnwrapsDriverError(t *testing.T) {
	driverErr := errors.New("connection refused")
	err := NewDatabaseExecuteError(driverErr, "failed to list orders")

	assert.True(t, errors.Is(err, driverErr))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
}
