package repository

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrReferenceViolation is returned when the store rejects a write because a
	// referenced or referencing record breaks a foreign key.
	ErrReferenceViolation = errors.New("foreign key violation")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns one page of orders and the total number of orders.
	List(ctx context.Context, page entity.Pagination) ([]*entity.Order, int64, error)

	// Update replaces every mutable field of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
