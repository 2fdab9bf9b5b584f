package repository

import (
	"context"

	"food-ordering/internal/domain"
)

// FoodRepository defines persistence operations for Food records.
type FoodRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, food *domain.Food) (string, error)
	InsertMany(ctx context.Context, foods []domain.Food) error
	List(ctx context.Context) ([]domain.Food, error)
	Get(ctx context.Context, id string) (*domain.Food, error)
	Count(ctx context.Context) (int64, error)
}
