package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"
)

const seedFoodCount = 25

var seedCategories = [...]string{"Burger", "Pizza", "Pasta", "Fries", "Sandwich"}

// SeedFoods populates an empty catalog with 25 sample foods in one bulk
// insert. Prices are random integers in [80, 280); names, descriptions
// and the category cycle are fixed. A non-empty catalog is left alone,
// so restarts after the first run are no-ops.
func SeedFoods(ctx context.Context, foods repository.FoodRepository, logger *logrus.Logger) error {
	count, err := foods.Count(ctx)
	if err != nil {
		return fmt.Errorf("count foods: %w", err)
	}
	if count > 0 {
		logger.Info("foods already exist, skipping seed")
		return nil
	}

	logger.Infof("seeding %d food items...", seedFoodCount)
	items := make([]domain.Food, 0, seedFoodCount)
	for i := 1; i <= seedFoodCount; i++ {
		cat := seedCategories[i%len(seedCategories)]
		items = append(items, domain.Food{
			Name:        fmt.Sprintf("%s %d", cat, i),
			Description: fmt.Sprintf("%s delicious #%d", cat, i),
			Price:       float64(rand.Intn(200) + 80),
			Category:    cat,
		})
	}

	if err := foods.InsertMany(ctx, items); err != nil {
		return fmt.Errorf("insert seed foods: %w", err)
	}
	logger.Info("seed complete")
	return nil
}
