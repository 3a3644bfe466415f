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

// vegetableRepository implements the repository.VegetableRepository interface.
type vegetableRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewVegetableRepository is the constructor for vegetableRepository.
func NewVegetableRepository(db *gorm.DB) repository.VegetableRepository {
	return &vegetableRepository{
		db: db,
		q:  query.Use(db),
	}
}

// Create persists a new vegetable.
func (repo *vegetableRepository) Create(ctx context.Context, vegetable *entity.Vegetable) error {
	if err := repo.q.VegetableModel.WithContext(ctx).Create(fromVegetableDomain(vegetable)); err != nil {
		return translateWriteError(err, "failed to create vegetable")
	}

	return nil
}

// FindByID retrieves a vegetable by its unique ID.
func (repo *vegetableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error) {
	vegetableM, err := repo.q.VegetableModel.WithContext(ctx).
		Where(repo.q.VegetableModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateReadError(err, repository.ErrVegetableNotFound, "failed to find vegetable by ID")
	}

	return toVegetableDomain(vegetableM), nil
}

// Exists reports whether a vegetable with the given ID exists.
func (repo *vegetableRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := repo.q.VegetableModel.WithContext(ctx).
		Where(repo.q.VegetableModel.ID.Eq(id)).
		Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check vegetable existence")
	}

	return count > 0, nil
}

// List returns one page of vegetables ordered by ID and the total number of vegetables.
func (repo *vegetableRepository) List(ctx context.Context, page entity.Pagination) ([]*entity.Vegetable, int64, error) {
	var vegetableModels []*model.VegetableModel

	total, err := listPage(repo.db.WithContext(ctx).Model(&model.VegetableModel{}), page, &vegetableModels)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list vegetables")
	}

	vegetables := make([]*entity.Vegetable, 0, len(vegetableModels))
	for _, vegetableM := range vegetableModels {
		vegetables = append(vegetables, toVegetableDomain(vegetableM))
	}

	return vegetables, total, nil
}

// Update replaces every mutable field of an existing vegetable.
func (repo *vegetableRepository) Update(ctx context.Context, vegetable *entity.Vegetable) error {
	// Explicit Select so zero values are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.VegetableModel{ID: vegetable.ID}).
		Select("title", "weight", "price", "length").
		Updates(fromVegetableDomain(vegetable))

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update vegetable")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVegetableNotFound
	}

	return nil
}

// Delete removes a vegetable by its ID.
func (repo *vegetableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.VegetableModel.WithContext(ctx).
		Where(repo.q.VegetableModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return translateWriteError(err, "failed to delete vegetable")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVegetableNotFound
	}

	return nil
}

// listPage counts every row of base, then loads the requested window ordered by id into dest.
func listPage(base *gorm.DB, page entity.Pagination, dest any) (int64, error) {
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}

	if page.Limit == 0 || int64(page.Offset) >= total {
		return total, nil
	}

	if err := base.
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// --- Mapper Functions ---

// toVegetableDomain converts a GORM VegetableModel to a domain Vegetable entity.
func toVegetableDomain(data *model.VegetableModel) *entity.Vegetable {
	if data == nil {
		return nil
	}

	return &entity.Vegetable{
		ID:     data.ID,
		Title:  data.Title,
		Weight: data.Weight,
		Price:  data.Price,
		Length: data.Length,
	}
}

// fromVegetableDomain converts a domain Vegetable entity to a GORM VegetableModel.
func fromVegetableDomain(data *entity.Vegetable) *model.VegetableModel {
	if data == nil {
		return nil
	}

	return &model.VegetableModel{
		ID:     data.ID,
		Title:  data.Title,
		Weight: data.Weight,
		Price:  data.Price,
		Length: data.Length,
	}
}
