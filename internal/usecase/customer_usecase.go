package usecase

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerInput carries the writable fields of a customer.
type CustomerInput struct {
	FullName string
}

// CustomerUsecase defines the interface for customer use cases
type CustomerUsecase interface {
	// ListCustomers returns one page of the customers matching filter, ordered
	// by creation time, together with the number of matches before paging.
	ListCustomers(ctx context.Context, filter entity.CustomerFilter) (*entity.Page[entity.Customer], error)

	// GetCustomer retrieves a customer by ID
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// CreateCustomer stores a new customer, assigning its ID and creation time
	CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error)

	// UpdateCustomer replaces the mutable fields of a customer
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error)

	// DeleteCustomer removes a customer and returns the deleted record
	DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
