package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"
)

// ErrMissingOrderFields indicates an order without a user or items.
var ErrMissingOrderFields = errors.New("userId and items required")

// OrderItemInput is one requested line item before coercion. Price and
// Quantity are whatever JSON the client sent; invalid values fall back
// to defaults rather than failing the order.
type OrderItemInput struct {
	FoodID   *string
	Name     string
	Price    any
	Quantity any
}

// OrderService places orders and lists them per user.
type OrderService interface {
	Place(ctx context.Context, userID string, items []OrderItemInput) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Place coerces each submitted item (quantity to a positive integer
// defaulting to 1, price to a non-negative number defaulting to 0),
// computes the total as the sum of price*quantity, and persists the
// order with status Pending. Neither userID nor any FoodID is checked
// against existing records.
func (s *orderService) Place(ctx context.Context, userID string, items []OrderItemInput) (*domain.Order, error) {
	if strings.TrimSpace(userID) == "" || len(items) == 0 {
		return nil, ErrMissingOrderFields
	}

	total := decimal.Zero
	saved := make([]domain.OrderItem, len(items))
	for i, in := range items {
		price := coercePrice(in.Price)
		qty := coerceQuantity(in.Quantity)
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(qty)))
		saved[i] = domain.OrderItem{
			FoodID:   in.FoodID,
			Name:     in.Name,
			Price:    price,
			Quantity: qty,
		}
	}

	order := &domain.Order{
		UserID:      userID,
		Items:       saved,
		TotalAmount: total.InexactFloat64(),
		Status:      domain.OrderStatusPending,
	}

	if _, err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// coercePrice returns the submitted price as a non-negative number,
// or 0 when the value is absent, non-numeric or negative.
func coercePrice(v any) float64 {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) || n < 0 {
		return 0
	}
	return n
}

// coerceQuantity returns the submitted quantity as a positive integer,
// or 1 when the value is absent, non-numeric or not positive.
// Fractional quantities truncate toward zero first.
func coerceQuantity(v any) int64 {
	n, ok := toNumber(v)
	if !ok || math.IsNaN(n) {
		return 1
	}
	q := int64(n)
	if q <= 0 {
		return 1
	}
	return q
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
