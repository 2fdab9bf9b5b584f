package domain

import "time"

// Food represents a catalog item available for ordering.
type Food struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	CreatedAt   time.Time
}
