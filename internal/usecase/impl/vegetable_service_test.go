package impl

import (
	"context"
	"testing"

	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVegetableService_ListVegetables(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	page := entity.Pagination{Limit: 100, Offset: 0}
	vegetables := []*entity.Vegetable{{ID: uuid.New(), Title: "Carrot"}}

	fx.expectRead(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().List(ctx, page).Return(vegetables, int64(1), nil)

	result, err := service.ListVegetables(ctx, page)

	require.NoError(t, err)
	assert.Equal(t, vegetables, result.Items)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 100, result.Limit)
}

func TestVegetableService_CreateVegetable_KeepsZeroValues(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.VegetableInput{Title: "Carrot", Weight: 10, Price: 0, Length: 3}

	fx.expectWrite(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vegetable")).Return(nil)

	vegetable, err := service.CreateVegetable(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, vegetable.ID)
	assert.Equal(t, "Carrot", vegetable.Title)
	assert.Equal(t, 10, vegetable.Weight)
	assert.Equal(t, 0, vegetable.Price)
	assert.Equal(t, 3, vegetable.Length)
}

func TestVegetableService_CreateVegetable_RejectsMissingTitle(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	_, err := service.CreateVegetable(context.Background(), &usecase.VegetableInput{Weight: 1})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVegetableService_UpdateVegetable_FullReplace(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Vegetable{ID: id, Title: "Carrot", Weight: 10, Price: 5, Length: 3}
	input := &usecase.VegetableInput{Title: "Beet", Weight: 0, Price: 7, Length: 0}

	fx.expectWrite(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.vegetableRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Vegetable")).Return(nil)

	vegetable, err := service.UpdateVegetable(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, &entity.Vegetable{ID: id, Title: "Beet", Weight: 0, Price: 7, Length: 0}, vegetable)
}

func TestVegetableService_GetVegetable_NotFound(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()

	fx.expectRead(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVegetableNotFound)

	_, err := service.GetVegetable(ctx, id)

	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityVegetable))
}

func TestVegetableService_DeleteVegetable_NotFound(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()

	fx.expectWrite(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVegetableNotFound)

	deleted, err := service.DeleteVegetable(ctx, id)

	assert.Nil(t, deleted)
	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityVegetable))
}

func TestVegetableService_DeleteVegetable_ReferencedByOrders(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewVegetableService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()

	fx.expectWrite(ctx)
	fx.withVegetableRepo()
	fx.vegetableRepo.EXPECT().FindByID(ctx, id).Return(&entity.Vegetable{ID: id}, nil)
	fx.vegetableRepo.EXPECT().Delete(ctx, id).Return(repository.ErrReferenceViolation)

	_, err := service.DeleteVegetable(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrReferenceConflict))
}
