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
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
		q:  query.Use(db),
	}
}

// Create persists a new order. A dangling customer or vegetable reference that
// slipped past the caller's checks is rejected by the store's foreign keys.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(fromOrderDomain(order)).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	orderM, err := repo.q.OrderModel.WithContext(ctx).
		Where(repo.q.OrderModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateReadError(err, repository.ErrOrderNotFound, "failed to find order by ID")
	}

	return toOrderDomain(orderM), nil
}

// List returns one page of orders ordered by ID and the total number of orders.
func (repo *orderRepository) List(ctx context.Context, page entity.Pagination) ([]*entity.Order, int64, error) {
	var orderModels []*model.OrderModel

	total, err := listPage(repo.db.WithContext(ctx).Model(&model.OrderModel{}), page, &orderModels)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Update replaces every mutable field of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{ID: order.ID}).
		Select("vegetable_id", "customer_id", "quantity").
		Updates(fromOrderDomain(order))

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by its ID.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.OrderModel.WithContext(ctx).
		Where(repo.q.OrderModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return translateWriteError(err, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		VegetableID: data.VegetableID,
		CustomerID:  data.CustomerID,
		Quantity:    data.Quantity,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		VegetableID: data.VegetableID,
		CustomerID:  data.CustomerID,
		Quantity:    data.Quantity,
	}
}
