package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFoodRepositoryCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	food := &domain.Food{Name: "Burger 1", Price: 120}
	id, err := repo.Create(ctx, food)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Burger 1", got.Name)
	assert.Equal(t, 120.0, got.Price)
	assert.Equal(t, "General", got.Category, "empty category takes the default")
	assert.False(t, got.CreatedAt.IsZero())
}

func TestFoodRepositoryGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Get(ctx, "3b4bb02e-94a0-4fbc-81a7-cf1e056bea36")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFoodRepositoryRejectsNegativePrice(t *testing.T) {
	db := openTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.Food{Name: "Bad", Price: -1})
	assert.Error(t, err)
}

func TestFoodRepositoryListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		_, err := repo.Create(ctx, &domain.Food{
			Name:      name,
			Price:     10,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 3)
	assert.Equal(t, "newest", foods[0].Name)
	assert.Equal(t, "middle", foods[1].Name)
	assert.Equal(t, "oldest", foods[2].Name)
}

func TestFoodRepositoryInsertManyAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	batch := []domain.Food{
		{Name: "Pizza 1", Price: 90, Category: "Pizza"},
		{Name: "Pasta 2", Price: 110, Category: "Pasta"},
		{Name: "Fries 3", Price: 80, Category: "Fries"},
	}
	require.NoError(t, repo.InsertMany(ctx, batch))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
