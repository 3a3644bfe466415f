package repository

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for vegetable persistence.
var (
	// ErrVegetableNotFound is returned when a vegetable is not found.
	ErrVegetableNotFound = errors.New("vegetable not found")
)

// VegetableRepository defines the interface for vegetable-related database operations.
type VegetableRepository interface {
	// Create persists a new vegetable.
	Create(ctx context.Context, vegetable *entity.Vegetable) error

	// FindByID retrieves a vegetable by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error)

	// Exists reports whether a vegetable with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns one page of vegetables and the total number of vegetables.
	List(ctx context.Context, page entity.Pagination) ([]*entity.Vegetable, int64, error)

	// Update replaces every mutable field of an existing vegetable.
	Update(ctx context.Context, vegetable *entity.Vegetable) error

	// Delete removes a vegetable by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
