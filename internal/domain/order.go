package domain

import "time"

// OrderStatus is the lifecycle state of an order. Orders are written
// once with StatusPending and never transition.
type OrderStatus string

const OrderStatusPending OrderStatus = "Pending"

// Order represents a placed purchase composed of food line items.
type Order struct {
	ID          string
	UserID      string
	Items       []OrderItem
	TotalAmount float64
	Status      OrderStatus
	CreatedAt   time.Time
}

// OrderItem captures a single line of an order. FoodID is nil when the
// client did not reference a catalog record; neither FoodID nor UserID
// is checked against existing records.
type OrderItem struct {
	ID       int64
	OrderID  string
	FoodID   *string
	Name     string
	Price    float64
	Quantity int64
}
