package impl

import (
	"context"
	"log/slog"

	deliverycontext "greengrocer/internal/delivery/context"
	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"
	"greengrocer/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *orderService) ListOrders(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Order], error) {
	if err := validatePagination(page); err != nil {
		return nil, err
	}

	var (
		orders []*entity.Order
		total  int64
	)

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, total, err = repoFactory.OrderRepo().List(ctx, page)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPage(orders, total, page), nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return orderKind.translate(err, id, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.OrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order input is required")
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	order := &entity.Order{ID: id}
	applyOrderInput(order, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Both references must resolve before anything is written
		if err := checkOrderReferences(ctx, repoFactory, input); err != nil {
			return err
		}

		// 2. Persist the order
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return translateOrderWriteError(err, id, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order created",
		slog.String("orderID", id.String()),
		slog.String("customerID", order.CustomerID.String()),
		slog.String("vegetableID", order.VegetableID.String()),
	)

	return order, nil
}

func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.OrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order input is required")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// 1. The order itself must exist
		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return orderKind.translate(err, id, "failed to find order")
		}

		// 2. The new references are checked the same way create checks them
		if err := checkOrderReferences(ctx, repoFactory, input); err != nil {
			return err
		}

		// 3. Replace every mutable field
		applyOrderInput(found, input)
		if err := orderRepo.Update(ctx, found); err != nil {
			return translateOrderWriteError(err, id, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return orderKind.translate(err, id, "failed to find order")
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return orderKind.translate(err, id, "failed to delete order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order deleted", slog.String("orderID", id.String()))

	return order, nil
}

// checkOrderReferences verifies the customer, then the vegetable, an order
// points at. The first missing one is reported as not found.
func checkOrderReferences(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.OrderInput) error {
	customerExists, err := repoFactory.CustomerRepo().Exists(ctx, input.CustomerID)
	if err != nil {
		return errors.Wrap(err, "failed to check customer")
	}
	if !customerExists {
		return domainerrors.NewNotFoundError(domainerrors.EntityCustomer, input.CustomerID)
	}

	vegetableExists, err := repoFactory.VegetableRepo().Exists(ctx, input.VegetableID)
	if err != nil {
		return errors.Wrap(err, "failed to check vegetable")
	}
	if !vegetableExists {
		return domainerrors.NewNotFoundError(domainerrors.EntityVegetable, input.VegetableID)
	}

	return nil
}

// translateOrderWriteError handles a reference removed by a concurrent request
// between the existence check and the write.
func translateOrderWriteError(err error, id uuid.UUID, op string) error {
	if errors.Is(err, repository.ErrReferenceViolation) {
		return domainerrors.ErrReferenceConflict.WithDetails("the referenced customer or vegetable no longer exists")
	}

	return orderKind.translate(err, id, op)
}

func applyOrderInput(order *entity.Order, input *usecase.OrderInput) {
	order.VegetableID = input.VegetableID
	order.CustomerID = input.CustomerID
	order.Quantity = input.Quantity
}
