package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateFromCart converts the user's cart into an order inside one
// transaction: insert the order, snapshot each cart line at the current
// product price, write the summed total back, clear the cart. Any
// failure rolls the whole thing back. An empty cart still yields an
// order with zero items and total 0.
func (r *OrderRepository) CreateFromCart(ctx context.Context, userID, cartID int64) (*model.Order, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	o := &model.Order{UserID: userID, TotalPrice: decimal.Zero, Status: model.OrderStatusProcessing}
	query := `
		INSERT INTO orders (userid, total_price, status, created_at, updated_at)
		VALUES ($1, 0, $2, $3, $3)
		RETURNING orderid, created_at, updated_at
	`
	if err := tx.QueryRow(ctx, query, userID, o.Status, time.Now()).Scan(&o.OrderID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT ci.productid, p.name, ci.quantity, p.price
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid
		WHERE ci.cartid=$1
	`, cartID)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	o.Items = []model.OrderItem{}
	for rows.Next() {
		it := model.OrderItem{OrderID: o.OrderID}
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			rows.Close()
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range o.Items {
		it := &o.Items[i]
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items (orderid, productid, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING orderitemid
		`, o.OrderID, it.ProductID, it.Quantity, it.Price).Scan(&it.OrderItemID)
		if err != nil {
			return nil, fmt.Errorf("snapshot item: %w", err)
		}
	}

	o.TotalPrice = model.OrderTotal(o.Items)
	if _, err := tx.Exec(ctx, `UPDATE orders SET total_price=$1 WHERE orderid=$2`, o.TotalPrice, o.OrderID); err != nil {
		return nil, fmt.Errorf("write total: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cartid=$1`, cartID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return o, nil
}

// ListByUser returns the user's orders newest first, items embedded.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT orderid, userid, total_price, status, created_at, updated_at FROM orders WHERE userid=$1 ORDER BY orderid DESC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.getItems(ctx, out[i].OrderID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// GetByIDForUser returns the order only when it belongs to the user.
func (r *OrderRepository) GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	var o model.Order
	query := `SELECT orderid, userid, total_price, status, created_at, updated_at FROM orders WHERE orderid=$1 AND userid=$2`
	if err := r.DB.QueryRow(ctx, query, orderID, userID).Scan(&o.OrderID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("order not found")
		}
		return nil, err
	}
	items, err := r.getItems(ctx, o.OrderID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) getItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	query := `
		SELECT oi.orderitemid, oi.orderid, oi.productid, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON p.productid = oi.productid
		WHERE oi.orderid=$1
		ORDER BY oi.orderitemid
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.OrderItemID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByUser wipes the user's order history; order_items go with the
// orders via ON DELETE CASCADE.
func (r *OrderRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE userid=$1`, userID)
	return err
}

func (r *OrderRepository) SetStatus(ctx context.Context, orderID int64, status string) error {
	query := `UPDATE orders SET status=$1, updated_at=$2 WHERE orderid=$3`
	tag, err := r.DB.Exec(ctx, query, status, time.Now(), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}
