// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/infra/persistence/model"
	"greengrocer/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerOrder is the stable ordering of every customer listing.
const customerOrder = "created_at ASC, id ASC"

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
		q:  query.Use(db),
	}
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.q.CustomerModel.WithContext(ctx).Create(customerM); err != nil {
		return translateWriteError(err, "failed to create customer")
	}

	customer.CreatedAt = customerM.CreatedAt

	return nil
}

// FindByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customerM, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateReadError(err, repository.ErrCustomerNotFound, "failed to find customer by ID")
	}

	return toCustomerDomain(customerM), nil
}

// Exists reports whether a customer with the given ID exists.
func (repo *customerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// Filter counts and pages the customers matching filter. The count runs
// before pagination over the same predicate as the page query.
func (repo *customerRepository) Filter(ctx context.Context, filter entity.CustomerFilter) ([]*entity.Customer, int64, error) {
	scope := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	scope = repo.applyOrderPredicates(scope, filter).Session(&gorm.Session{})

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count customers")
	}

	customers := make([]*entity.Customer, 0)
	if filter.Limit == 0 || total == 0 || int64(filter.Offset) >= total {
		return customers, total, nil
	}

	var customerModels []*model.CustomerModel
	if err := scope.
		Order(customerOrder).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&customerModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list customers")
	}

	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// applyOrderPredicates narrows scope to the customers whose orders satisfy filter.
//
// The orders considered are all of a customer's orders, or only those for
// filter.VegetableID when it is set. A customer matches when it has at least
// one considered order (vegetable filter) and the considered quantities sum to
// at least MinTotalQuantity, a customer without considered orders summing to 0.
// Aggregation is grouped by customer, so several orders never duplicate a row.
func (repo *customerRepository) applyOrderPredicates(scope *gorm.DB, filter entity.CustomerFilter) *gorm.DB {
	if filter.VegetableID != nil {
		scope = scope.Where("id IN (?)", repo.consideredOrders(filter).Select("customer_id"))
	}

	if filter.MinTotalQuantity == nil {
		return scope
	}

	minTotal := *filter.MinTotalQuantity
	totals := repo.consideredOrders(filter).
		Select("customer_id").
		Group("customer_id")

	// A customer with no considered orders sums to 0: it qualifies exactly when
	// minTotal <= 0, which is the case the NOT IN form covers.
	if minTotal > 0 {
		return scope.Where("id IN (?)", totals.Having("SUM(quantity) >= ?", minTotal))
	}

	return scope.Where("id NOT IN (?)", totals.Having("SUM(quantity) < ?", minTotal))
}

// consideredOrders starts a sub-query over the orders the filter aggregates.
func (repo *customerRepository) consideredOrders(filter entity.CustomerFilter) *gorm.DB {
	orders := repo.db.Session(&gorm.Session{NewDB: true}).Model(&model.OrderModel{})
	if filter.VegetableID != nil {
		orders = orders.Where("vegetable_id = ?", *filter.VegetableID)
	}

	return orders
}

// Update replaces the mutable fields of an existing customer.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Update("full_name", customer.FullName)

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer by its ID. Orders still referencing the customer
// make the store reject the delete with repository.ErrReferenceViolation.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return translateWriteError(err, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		FullName:  data.FullName,
		CreatedAt: data.CreatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		FullName:  data.FullName,
		CreatedAt: data.CreatedAt,
	}
}
