package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering/internal/domain"
)

func TestOrderRepositoryCreateAndListByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	foodID := "9e04f560-7d3c-4b0a-b0d4-18b4417de286"
	order := &domain.Order{
		UserID:      "user-1",
		TotalAmount: 340,
		Status:      domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{FoodID: &foodID, Name: "Burger 1", Price: 120, Quantity: 2},
			{Name: "off-menu", Price: 100, Quantity: 1},
		},
	}
	id, err := repo.Create(ctx, order)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	orders, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 340.0, got.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
	require.Len(t, got.Items, 2)
	// item order survives the round trip
	assert.Equal(t, "Burger 1", got.Items[0].Name)
	require.NotNil(t, got.Items[0].FoodID)
	assert.Equal(t, foodID, *got.Items[0].FoodID)
	assert.Nil(t, got.Items[1].FoodID)
}

func TestOrderRepositoryListNewestFirstPerUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, userID := range []string{"user-1", "user-2", "user-1"} {
		_, err := repo.Create(ctx, &domain.Order{
			UserID:      userID,
			TotalAmount: float64(i + 1),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			Items:       []domain.OrderItem{{Name: "x", Price: 1, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	orders, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 3.0, orders[0].TotalAmount, "newest first")
	assert.Equal(t, 1.0, orders[1].TotalAmount)

	other, err := repo.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, other, 1)

	none, err := repo.ListByUser(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// an order may reference a user and foods that do not exist
func TestOrderRepositoryNoReferentialChecks(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	ghostFood := "no-such-food"
	_, err := repo.Create(ctx, &domain.Order{
		UserID: "no-such-user",
		Items:  []domain.OrderItem{{FoodID: &ghostFood, Name: "phantom", Price: 5, Quantity: 1}},
	})
	assert.NoError(t, err)
}
