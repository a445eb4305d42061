package services

import (
	"context"
	"fmt"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/shopspring/decimal"
)

type CartStore interface {
	GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error)
	GetItems(ctx context.Context, cartID int64) ([]model.CartItem, error)
	AddOrIncrementItem(ctx context.Context, cartID, productID int64, qty int) (int64, error)
	GetItem(ctx context.Context, itemID int64) (*model.CartItem, error)
	SetItemQuantity(ctx context.Context, itemID int64, qty int) error
	DeleteItem(ctx context.Context, itemID int64) error
	ReplaceItems(ctx context.Context, cartID int64, lines []model.CartLine) error
}

type CartService struct {
	Repo     CartStore
	Products ProductStore
}

func NewCartService(r CartStore, pr ProductStore) *CartService {
	return &CartService{Repo: r, Products: pr}
}

// Get returns the user's cart with items and total, creating the cart
// lazily on first access.
func (s *CartService) Get(ctx context.Context, userID int64) (*model.CartResponse, error) {
	cart, err := s.Repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetItems(ctx, cart.CartID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return &model.CartResponse{CartID: cart.CartID, Items: items, Total: total}, nil
}

// Add resolves the product, then upserts the (cart, product) line:
// existing lines have their quantity incremented, missing lines are
// created. Quantities below 1 default to 1.
func (s *CartService) Add(ctx context.Context, userID, productID int64, qty int) (*model.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}
	cart, err := s.Repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	itemID, err := s.Repo.AddOrIncrementItem(ctx, cart.CartID, productID, qty)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetItem(ctx, itemID)
}

// UpdateItem overwrites a line's quantity. Negative is rejected; zero
// deletes the line instead of keeping a dead row.
func (s *CartService) UpdateItem(ctx context.Context, itemID int64, qty int) (*model.CartItem, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if _, err := s.Repo.GetItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("%w: cart item", ErrNotFound)
	}
	if qty == 0 {
		if err := s.Repo.DeleteItem(ctx, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := s.Repo.SetItemQuantity(ctx, itemID, qty); err != nil {
		return nil, err
	}
	return s.Repo.GetItem(ctx, itemID)
}

func (s *CartService) RemoveItem(ctx context.Context, itemID int64) error {
	if err := s.Repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("%w: cart item", ErrNotFound)
	}
	return nil
}

// Replace swaps the cart's contents for the given lines (PUT /cart).
// Every referenced product must exist; non-positive quantities are
// rejected.
func (s *CartService) Replace(ctx context.Context, userID int64, lines []model.CartLine) (*model.CartResponse, error) {
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if _, err := s.Products.GetByID(ctx, l.ProductID); err != nil {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, l.ProductID)
		}
	}
	cart, err := s.Repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceItems(ctx, cart.CartID, lines); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
