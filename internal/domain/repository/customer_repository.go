// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// Create persists a new customer. ID and CreatedAt must already be set.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Exists reports whether a customer with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Filter returns the page of customers matching filter and the number of
	// matching customers before pagination. Both are read with the same handle,
	// so callers wanting a consistent pair must run it inside one transaction.
	Filter(ctx context.Context, filter entity.CustomerFilter) ([]*entity.Customer, int64, error)

	// Update replaces the mutable fields of an existing customer.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
