package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Order is append-only: total and items are fixed at creation, only the
// status moves afterwards.
type Order struct {
	OrderID    int64           `json:"orderid"`
	UserID     int64           `json:"userid"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
	Items      []OrderItem     `json:"items"`
}

// OrderItem carries a frozen copy of the product price. Later catalog
// price changes must not touch it.
type OrderItem struct {
	OrderItemID int64           `json:"orderitemid"`
	OrderID     int64           `json:"orderid"`
	ProductID   int64           `json:"productid"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderTotal sums price × quantity across items. The checkout
// transaction writes this value onto the order row; nothing recomputes
// it afterwards.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
