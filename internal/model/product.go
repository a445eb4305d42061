package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   int64           `json:"productid"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoryid,omitempty"`
	Image       *string         `json:"image,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// ProductFilter is the normalized query for GET /products.
type ProductFilter struct {
	CategoryID *int64
	Search     string
	Page       int
	PageSize   int
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// ProductPage mirrors the paginated list response: total row count plus
// the current page of results.
type ProductPage struct {
	Count   int64     `json:"count"`
	Results []Product `json:"results"`
}
