package postgres

import (
	"context"
	"testing"

	"greengrocer/internal/domain/entity"
	"greengrocer/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVegetableRepository_UpdateWritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	repo := NewVegetableRepository(db)
	ctx := context.Background()

	carrot := s.vegetable("Carrot")

	replacement := &entity.Vegetable{ID: carrot.ID, Title: "Beet", Weight: 0, Price: 0, Length: 0}
	require.NoError(t, repo.Update(ctx, replacement))

	found, err := repo.FindByID(ctx, carrot.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, found)

	missing := &entity.Vegetable{ID: uuid.New(), Title: "Ghost"}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrVegetableNotFound)
}

func TestVegetableRepository_ListWindows(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	repo := NewVegetableRepository(db)
	ctx := context.Background()

	var want []uuid.UUID
	for _, title := range []string{"Carrot", "Beet", "Onion"} {
		want = append(want, s.vegetable(title).ID)
	}

	items, total, err := repo.List(ctx, entity.Pagination{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, want[1], items[0].ID)
	assert.Equal(t, want[2], items[1].ID)

	items, total, err = repo.List(ctx, entity.Pagination{Limit: 10, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, items)

	items, total, err = repo.List(ctx, entity.Pagination{Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, items)
}

func TestVegetableRepository_DeleteReferencedByOrder(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	repo := NewVegetableRepository(db)

	carrot := s.vegetable("Carrot")
	s.order(s.customer("Alice"), carrot, 1)

	assert.ErrorIs(t, repo.Delete(context.Background(), carrot.ID), repository.ErrReferenceViolation)
}

func TestOrderRepository_CreateRejectsUnknownReference(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	repo := NewOrderRepository(db)

	order := &entity.Order{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		VegetableID: s.vegetable("Carrot").ID,
		Quantity:    1,
	}

	assert.ErrorIs(t, repo.Create(context.Background(), order), repository.ErrReferenceViolation)
}

func TestOrderRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	alice := s.customer("Alice")
	bob := s.customer("Bob")
	carrot := s.vegetable("Carrot")
	order := s.order(alice, carrot, 7)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, found)

	replacement := &entity.Order{ID: order.ID, CustomerID: bob.ID, VegetableID: carrot.ID, Quantity: 0}
	require.NoError(t, repo.Update(ctx, replacement))

	found, err = repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, found)

	items, total, err := repo.List(ctx, entity.Pagination{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []*entity.Order{replacement}, items)

	require.NoError(t, repo.Delete(ctx, order.ID))
	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, order.ID), repository.ErrOrderNotFound)
}
