package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"
)

const createFoodsTable = `
CREATE TABLE IF NOT EXISTS foods (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price REAL NOT NULL CHECK (price >= 0),
	category TEXT NOT NULL DEFAULT 'General',
	image TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type FoodRepository struct {
	db *sql.DB
}

func NewFoodRepository(db *sql.DB) repository.FoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFoodsTable); err != nil {
		return fmt.Errorf("create foods table: %w", err)
	}
	return nil
}

func (r *FoodRepository) Create(ctx context.Context, food *domain.Food) (string, error) {
	food.ID = uuid.NewString()
	if food.CreatedAt.IsZero() {
		food.CreatedAt = time.Now().UTC()
	}
	if food.Category == "" {
		food.Category = "General"
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO foods (id, name, description, price, category, image, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		food.ID,
		food.Name,
		food.Description,
		food.Price,
		food.Category,
		food.Image,
		food.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert food: %w", err)
	}
	return food.ID, nil
}

func (r *FoodRepository) InsertMany(ctx context.Context, foods []domain.Food) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert foods: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO foods (id, name, description, price, category, image, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert foods: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range foods {
		food := &foods[i]
		food.ID = uuid.NewString()
		if food.CreatedAt.IsZero() {
			food.CreatedAt = now
		}
		if food.Category == "" {
			food.Category = "General"
		}
		if _, err := stmt.ExecContext(ctx,
			food.ID,
			food.Name,
			food.Description,
			food.Price,
			food.Category,
			food.Image,
			food.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert food %q: %w", food.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert foods: %w", err)
	}
	return nil
}

func (r *FoodRepository) List(ctx context.Context) ([]domain.Food, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, price, category, image, created_at
FROM foods
ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(
			&food.ID,
			&food.Name,
			&food.Description,
			&food.Price,
			&food.Category,
			&food.Image,
			&food.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return foods, nil
}

func (r *FoodRepository) Get(ctx context.Context, id string) (*domain.Food, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description, price, category, image, created_at
FROM foods
WHERE id = ?`,
		id,
	)

	var food domain.Food
	if err := row.Scan(
		&food.ID,
		&food.Name,
		&food.Description,
		&food.Price,
		&food.Category,
		&food.Image,
		&food.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found")
		}
		return nil, fmt.Errorf("scan food: %w", err)
	}
	return &food, nil
}

func (r *FoodRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}
