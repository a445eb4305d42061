package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the per-user staging area. Exactly one row per user, created
// lazily on first access and never deleted (it persists empty after
// checkout).
type Cart struct {
	CartID    int64      `json:"cartid"`
	UserID    int64      `json:"userid"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type CartItem struct {
	CartItemID int64           `json:"cartitemid"`
	CartID     int64           `json:"cartid"`
	ProductID  int64           `json:"productid"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

// CartLine is a write payload: one intended (product, quantity) pair.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartResponse is returned by GET /cart.
type CartResponse struct {
	CartID int64           `json:"cartid"`
	Items  []CartItem      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}
