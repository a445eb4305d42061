package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the user's cart, creating the row on first
// access. Safe to call repeatedly; the unique userid index makes the
// insert a no-op after the first call.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error) {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO carts (userid, created_at) VALUES ($1, $2)
		ON CONFLICT (userid) DO NOTHING
	`, userID, time.Now())
	if err != nil {
		return nil, err
	}

	var c model.Cart
	query := `SELECT cartid, userid, created_at FROM carts WHERE userid=$1`
	if err := r.DB.QueryRow(ctx, query, userID).Scan(&c.CartID, &c.UserID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetItems returns cart items joined with the current product name and
// price.
func (r *CartRepository) GetItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	query := `
		SELECT ci.cartitemid, ci.cartid, ci.productid, p.name, p.price, ci.quantity, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid
		WHERE ci.cartid=$1
		ORDER BY ci.cartitemid
	`
	rows, err := r.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.CartItemID, &it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddOrIncrementItem upserts one (cart, product) line. The increment
// happens in the database, so concurrent adds for the same pair cannot
// lose updates.
func (r *CartRepository) AddOrIncrementItem(ctx context.Context, cartID, productID int64, qty int) (int64, error) {
	var itemID int64
	query := `
		INSERT INTO cart_items (cartid, productid, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (cartid, productid)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING cartitemid
	`
	if err := r.DB.QueryRow(ctx, query, cartID, productID, qty, time.Now()).Scan(&itemID); err != nil {
		return 0, err
	}
	return itemID, nil
}

func (r *CartRepository) GetItem(ctx context.Context, itemID int64) (*model.CartItem, error) {
	var it model.CartItem
	query := `
		SELECT ci.cartitemid, ci.cartid, ci.productid, p.name, p.price, ci.quantity, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid
		WHERE ci.cartitemid=$1
	`
	if err := r.DB.QueryRow(ctx, query, itemID).Scan(&it.CartItemID, &it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, errors.New("cart item not found")
	}
	it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
	return &it, nil
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, itemID int64, qty int) error {
	query := `UPDATE cart_items SET quantity=$1, updated_at=$2 WHERE cartitemid=$3`
	tag, err := r.DB.Exec(ctx, query, qty, time.Now(), itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	query := `DELETE FROM cart_items WHERE cartitemid=$1`
	tag, err := r.DB.Exec(ctx, query, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

// ReplaceItems swaps the cart's contents for the given lines in one
// transaction (PUT /cart).
func (r *CartRepository) ReplaceItems(ctx context.Context, cartID int64, lines []model.CartLine) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cartid=$1`, cartID); err != nil {
		return err
	}
	for _, l := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_items (cartid, productid, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (cartid, productid)
			DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		`, cartID, l.ProductID, l.Quantity, time.Now())
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
