package domain

import "time"

// OrderStatus is the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order references a user and a product. Orders are created with
// quantity 1 and status pending; no transition logic exists here.
type Order struct {
	OrderID   string      `db:"order_id"`
	UserID    string      `db:"user_id"`
	ProductID string      `db:"product_id"`
	Quantity  int         `db:"quantity"`
	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}
