package usecase

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderInput carries the writable fields of an order.
type OrderInput struct {
	VegetableID uuid.UUID
	CustomerID  uuid.UUID
	Quantity    int
}

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	ListOrders(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Order], error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// CreateOrder stores a new order once both the customer and the vegetable
	// it references are known to exist.
	CreateOrder(ctx context.Context, input *OrderInput) (*entity.Order, error)

	// UpdateOrder replaces every field but the ID, re-checking both references.
	UpdateOrder(ctx context.Context, id uuid.UUID, input *OrderInput) (*entity.Order, error)

	// DeleteOrder removes an order and returns the deleted record
	DeleteOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
