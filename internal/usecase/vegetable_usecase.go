package usecase

import (
	"context"

	"greengrocer/internal/domain/entity"

	"github.com/google/uuid"
)

// VegetableInput carries the writable fields of a vegetable.
type VegetableInput struct {
	Title  string
	Weight int
	Price  int
	Length int
}

// VegetableUsecase defines the interface for vegetable catalog use cases
type VegetableUsecase interface {
	ListVegetables(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Vegetable], error)
	GetVegetable(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error)
	CreateVegetable(ctx context.Context, input *VegetableInput) (*entity.Vegetable, error)

	// UpdateVegetable replaces every field but the ID
	UpdateVegetable(ctx context.Context, id uuid.UUID, input *VegetableInput) (*entity.Vegetable, error)

	// DeleteVegetable removes a vegetable and returns the deleted record
	DeleteVegetable(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error)
}
