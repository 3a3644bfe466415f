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

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 7}

	fx.expectWrite(ctx)
	fx.withCustomerRepo()
	fx.withVegetableRepo()
	fx.withOrderRepo()
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(true, nil)
	fx.vegetableRepo.EXPECT().Exists(ctx, input.VegetableID).Return(true, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.ID != uuid.Nil && o.Quantity == 7 && o.CustomerID == input.CustomerID
		})).
		Return(nil)

	order, err := service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.CustomerID, order.CustomerID)
	assert.Equal(t, input.VegetableID, order.VegetableID)
	assert.Equal(t, 7, order.Quantity)
}

func TestOrderService_CreateOrder_MissingCustomerPersistsNothing(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 1}

	fx.expectWrite(ctx)
	fx.withCustomerRepo()
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(false, nil)

	order, err := service.CreateOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityCustomer))
	assert.Contains(t, err.Error(), input.CustomerID.String())
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_MissingVegetable(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 1}

	fx.expectWrite(ctx)
	fx.withCustomerRepo()
	fx.withVegetableRepo()
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(true, nil)
	fx.vegetableRepo.EXPECT().Exists(ctx, input.VegetableID).Return(false, nil)

	_, err := service.CreateOrder(ctx, input)

	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityVegetable))
	assert.False(t, domainerrors.IsNotFound(err, domainerrors.EntityCustomer))
}

func TestOrderService_CreateOrder_ReferenceRemovedConcurrently(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 1}

	fx.expectWrite(ctx)
	fx.withCustomerRepo()
	fx.withVegetableRepo()
	fx.withOrderRepo()
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(true, nil)
	fx.vegetableRepo.EXPECT().Exists(ctx, input.VegetableID).Return(true, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(repository.ErrReferenceViolation)

	_, err := service.CreateOrder(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrReferenceConflict))
}

func TestOrderService_UpdateOrder_RevalidatesReferences(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Order{ID: id, CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 2}
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: existing.VegetableID, Quantity: 3}

	fx.expectWrite(ctx)
	fx.withOrderRepo()
	fx.withCustomerRepo()
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(false, nil)

	order, err := service.UpdateOrder(ctx, id, input)

	assert.Nil(t, order)
	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityCustomer))
	fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_FullReplace(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Order{ID: id, CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 2}
	input := &usecase.OrderInput{CustomerID: uuid.New(), VegetableID: uuid.New(), Quantity: 0}

	fx.expectWrite(ctx)
	fx.withOrderRepo()
	fx.withCustomerRepo()
	fx.withVegetableRepo()
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.customerRepo.EXPECT().Exists(ctx, input.CustomerID).Return(true, nil)
	fx.vegetableRepo.EXPECT().Exists(ctx, input.VegetableID).Return(true, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := service.UpdateOrder(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, &entity.Order{ID: id, CustomerID: input.CustomerID, VegetableID: input.VegetableID, Quantity: 0}, order)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()

	fx.expectWrite(ctx)
	fx.withOrderRepo()
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := service.UpdateOrder(ctx, id, &usecase.OrderInput{Quantity: 1})

	assert.True(t, domainerrors.IsNotFound(err, domainerrors.EntityOrder))
}

func TestOrderService_GetAndDelete(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Order{ID: id, Quantity: 4}

	fx.expectRead(ctx)
	fx.expectWrite(ctx)
	fx.withOrderRepo()
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.orderRepo.EXPECT().Delete(ctx, id).Return(nil)

	got, err := service.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, existing, got)

	deleted, err := service.DeleteOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, existing, deleted)
}

func TestOrderService_ListOrders_RejectsNegativeOffset(t *testing.T) {
	fx := newServiceFixtures(t)
	service := NewOrderService(fx.txManager, fx.logger)

	_, err := service.ListOrders(context.Background(), entity.Pagination{Limit: 1, Offset: -1})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
