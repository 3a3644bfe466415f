package query_test

import (
	"context"
	"path/filepath"
	"testing"

	"greengrocer/internal/infra/persistence/model"
	"greengrocer/internal/infra/persistence/postgres"
	"greengrocer/internal/infra/persistence/postgres/query"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "query.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return db
}

func TestVegetableModel_CreateFindCountDelete(t *testing.T) {
	q := query.Use(openDB(t))
	ctx := context.Background()
	v := q.VegetableModel

	carrot := &model.VegetableModel{ID: uuid.Must(uuid.NewV7()), Title: "Carrot", Weight: 10, Price: 5, Length: 3}
	require.NoError(t, v.WithContext(ctx).Create(carrot))

	found, err := v.WithContext(ctx).Where(v.ID.Eq(carrot.ID)).First()
	require.NoError(t, err)
	assert.Equal(t, carrot.Title, found.Title)
	assert.Equal(t, carrot.Weight, found.Weight)

	count, err := v.WithContext(ctx).Where(v.ID.Eq(uuid.New())).Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	result, err := v.WithContext(ctx).Where(v.ID.Eq(carrot.ID)).Delete()
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RowsAffected)

	_, err = v.WithContext(ctx).Where(v.ID.Eq(carrot.ID)).First()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderModel_DeleteOfReferencedCustomerIsRejected(t *testing.T) {
	q := query.Use(openDB(t))
	ctx := context.Background()

	customer := &model.CustomerModel{ID: uuid.Must(uuid.NewV7()), FullName: "Alice"}
	vegetable := &model.VegetableModel{ID: uuid.Must(uuid.NewV7()), Title: "Carrot"}
	require.NoError(t, q.CustomerModel.WithContext(ctx).Create(customer))
	require.NoError(t, q.VegetableModel.WithContext(ctx).Create(vegetable))

	// Orders are written with gorm directly so the belongs-to structs stay untouched.
	order := &model.OrderModel{ID: uuid.Must(uuid.NewV7()), CustomerID: customer.ID, VegetableID: vegetable.ID, Quantity: 2}
	require.NoError(t, q.OrderModel.WithContext(ctx).UnderlyingDB().Omit("Customer", "Vegetable").Create(order).Error)

	_, err := q.CustomerModel.WithContext(ctx).Where(q.CustomerModel.ID.Eq(customer.ID)).Delete()
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	count, err := q.OrderModel.WithContext(ctx).Where(q.OrderModel.CustomerID.Eq(customer.ID)).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
