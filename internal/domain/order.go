package domain

import "time"

// OrderStatus is the closed set of fixture order states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// OrderItem is one line of a historical order. Price is the unit price at
// the time of the order, not the current catalog price.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a historical purchase record from the bundled fixture. Orders are
// display-only: the live checkout flow never creates one.
type Order struct {
	OrderID     string      `json:"orderId"`
	UserID      int64       `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	Date        string      `json:"date"`

	// PlacedAt is the parsed Date, populated at fixture load. Zero when the
	// fixture date string could not be parsed.
	PlacedAt time.Time `json:"-"`
}
