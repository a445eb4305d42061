package services

import (
	"context"
	"fmt"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
)

type OrderStore interface {
	CreateFromCart(ctx context.Context, userID, cartID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

type OrderService struct {
	Repo OrderStore
	Cart CartStore
}

func NewOrderService(r OrderStore, cart CartStore) *OrderService {
	return &OrderService{Repo: r, Cart: cart}
}

// Checkout converts the user's cart into an order. The conversion runs
// as one transaction in the store; an empty cart produces an order with
// zero items and total 0.
func (s *OrderService) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	cart, err := s.Cart.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateFromCart(ctx, userID, cart.CartID)
}

func (s *OrderService) History(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	o, err := s.Repo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	return o, nil
}

func (s *OrderService) ClearHistory(ctx context.Context, userID int64) error {
	return s.Repo.DeleteByUser(ctx, userID)
}

// Reorder replays a past order into the current cart: each order item
// is upserted with the same increment semantics as add-to-cart.
func (s *OrderService) Reorder(ctx context.Context, userID, orderID int64) (*model.Cart, error) {
	o, err := s.Repo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	cart, err := s.Cart.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, it := range o.Items {
		if _, err := s.Cart.AddOrIncrementItem(ctx, cart.CartID, it.ProductID, it.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}
