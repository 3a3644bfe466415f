package postgres

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"greengrocer/config"
	"greengrocer/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a file-backed SQLite database with foreign keys enforced
// and the schema migrated, configured the way Open configures PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "greengrocer.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	cfg := &config.Config{}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

// seed writes fixtures outside any transaction manager call.
type seed struct {
	t   *testing.T
	db  *gorm.DB
	ctx context.Context
	// base is the creation time of the first seeded customer; later ones
	// are one second apart so listing order is deterministic.
	base  time.Time
	count int
}

func newSeed(t *testing.T, db *gorm.DB) *seed {
	return &seed{
		t:    t,
		db:   db,
		ctx:  context.Background(),
		base: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *seed) customer(name string) *entity.Customer {
	s.t.Helper()

	customer := &entity.Customer{
		ID:        uuid.Must(uuid.NewV7()),
		FullName:  name,
		CreatedAt: s.base.Add(time.Duration(s.count) * time.Second),
	}
	s.count++

	require.NoError(s.t, NewCustomerRepository(s.db).Create(s.ctx, customer))

	return customer
}

func (s *seed) vegetable(title string) *entity.Vegetable {
	s.t.Helper()

	vegetable := &entity.Vegetable{
		ID:     uuid.Must(uuid.NewV7()),
		Title:  title,
		Weight: 10,
		Price:  5,
		Length: 3,
	}
	require.NoError(s.t, NewVegetableRepository(s.db).Create(s.ctx, vegetable))

	return vegetable
}

func (s *seed) order(customer *entity.Customer, vegetable *entity.Vegetable, quantity int) *entity.Order {
	s.t.Helper()

	order := &entity.Order{
		ID:          uuid.Must(uuid.NewV7()),
		CustomerID:  customer.ID,
		VegetableID: vegetable.ID,
		Quantity:    quantity,
	}
	require.NoError(s.t, NewOrderRepository(s.db).Create(s.ctx, order))

	return order
}

func customerIDs(customers []*entity.Customer) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	return ids
}

func intPtr(v int) *int {
	return &v
}
