package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"
)

var (
	// ErrInvalidFoodID marks a malformed catalog identifier.
	ErrInvalidFoodID = errors.New("invalid food id")
	// ErrFoodNotFound marks a well-formed identifier with no record.
	ErrFoodNotFound = errors.New("food not found")
)

// CatalogService exposes the food catalog: list, fetch, create. Records
// are immutable once created; there is no update or delete.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Food, error)
	Get(ctx context.Context, id string) (*domain.Food, error)
	Create(ctx context.Context, name, description string, price float64, category, image string) (*domain.Food, error)
}

type catalogService struct {
	foods repository.FoodRepository
}

func NewCatalogService(foods repository.FoodRepository) CatalogService {
	return &catalogService{foods: foods}
}

func (s *catalogService) List(ctx context.Context) ([]domain.Food, error) {
	return s.foods.List(ctx)
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidFoodID
	}

	food, err := s.foods.Get(ctx, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *catalogService) Create(ctx context.Context, name, description string, price float64, category, image string) (*domain.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	food := &domain.Food{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
	}

	// a negative price trips the store's CHECK constraint here
	if _, err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}
