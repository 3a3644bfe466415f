package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "greengrocer/internal/delivery/context"
	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"
	"greengrocer/internal/usecase"

	"github.com/google/uuid"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListCustomers runs the customer filter. The count and the page are read in
// one read-only transaction so total always describes the returned window.
func (srv *customerService) ListCustomers(ctx context.Context, filter entity.CustomerFilter) (*entity.Page[entity.Customer], error) {
	if err := validatePagination(filter.Pagination); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Filtering customers",
		slog.Bool("hasPredicate", filter.HasPredicate()),
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset),
	)

	var (
		customers []*entity.Customer
		total     int64
	)

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		customers, total, err = repoFactory.CustomerRepo().Filter(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter customers")
	}

	return entity.NewPage(customers, total, filter.Pagination), nil
}

// GetCustomer retrieves a customer by ID.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByID(ctx, id)
		if err != nil {
			return customerKind.translate(err, id, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// CreateCustomer stores a new customer.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:       id,
		FullName: input.FullName,
		// Microseconds are the finest resolution PostgreSQL keeps; truncating
		// here makes the returned value equal to what a later read returns.
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CustomerRepo().Create(ctx, customer)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Customer created", slog.String("customerID", id.String()))

	return customer, nil
}

// UpdateCustomer replaces the full name of an existing customer.
func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.CustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// 1. Load the current record; createdAt is returned unchanged
		found, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			return customerKind.translate(err, id, "failed to find customer")
		}

		// 2. Replace the mutable fields
		found.FullName = input.FullName
		if err := customerRepo.Update(ctx, found); err != nil {
			return customerKind.translate(err, id, "failed to update customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Orders that still reference the customer
// make the store reject the delete, which surfaces as a reference conflict.
func (srv *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		found, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			return customerKind.translate(err, id, "failed to find customer")
		}

		if err := customerRepo.Delete(ctx, id); err != nil {
			return customerKind.translate(err, id, "failed to delete customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Customer deleted", slog.String("customerID", id.String()))

	return customer, nil
}

func validateCustomerInput(input *usecase.CustomerInput) error {
	if input == nil || strings.TrimSpace(input.FullName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fullName is required")
	}

	return nil
}
