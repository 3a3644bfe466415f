package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"greengrocer/internal/domain/repository"
	mockRepo "greengrocer/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

// serviceFixtures holds the mocks shared by the service tests. The
// transaction manager hands factory to the callback and returns its error.
type serviceFixtures struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	customerRepo  *mockRepo.MockCustomerRepository
	vegetableRepo *mockRepo.MockVegetableRepository
	orderRepo     *mockRepo.MockOrderRepository
	logger        *slog.Logger
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	return &serviceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		customerRepo:  mockRepo.NewMockCustomerRepository(t),
		vegetableRepo: mockRepo.NewMockVegetableRepository(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (fx *serviceFixtures) runTx(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(fx.factory)
}

func (fx *serviceFixtures) expectWrite(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(txFuncType)).
		RunAndReturn(fx.runTx)
}

func (fx *serviceFixtures) expectRead(ctx context.Context) {
	fx.txManager.EXPECT().
		ExecuteReadOnly(ctx, mock.AnythingOfType(txFuncType)).
		RunAndReturn(fx.runTx)
}

func (fx *serviceFixtures) withCustomerRepo() {
	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
}

func (fx *serviceFixtures) withVegetableRepo() {
	fx.factory.EXPECT().VegetableRepo().Return(fx.vegetableRepo)
}

func (fx *serviceFixtures) withOrderRepo() {
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
}

func intPtr(v int) *int {
	return &v
}
