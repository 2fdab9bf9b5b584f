package repository

import (
	"context"

	"food-ordering/internal/domain"
)

// OrderRepository exposes persistence operations for Order aggregates.
// An order and its items are written atomically.
type OrderRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, order *domain.Order) (string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
