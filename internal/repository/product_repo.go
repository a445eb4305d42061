package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `productid, name, description, price, stock, categoryid, image, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `INSERT INTO products (name, description, price, stock, categoryid, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING productid`
	if err := r.DB.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.Image, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE productid=$1`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.New("product not found")
	}
	return p, nil
}

// List applies the optional category filter and case-insensitive
// substring name search, newest first, and returns the filtered row
// count alongside the requested page.
func (r *ProductRepository) List(ctx context.Context, f model.ProductFilter) (*model.ProductPage, error) {
	where := ` WHERE ($1::bigint IS NULL OR categoryid = $1)
		AND ($2 = '' OR name ILIKE '%' || $2 || '%')`

	var count int64
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, f.CategoryID, f.Search).Scan(&count); err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY created_at DESC, productid DESC LIMIT $3 OFFSET $4`
	rows, err := r.DB.Query(ctx, query, f.CategoryID, f.Search, f.PageSize, f.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &model.ProductPage{Count: count, Results: results}, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `UPDATE products SET name=$1, description=$2, price=$3, stock=$4, categoryid=$5, image=$6, updated_at=$7 WHERE productid=$8`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.Image, time.Now(), p.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE productid=$1`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// ListMissingImages feeds the offline image backfill tool.
func (r *ProductRepository) ListMissingImages(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE image IS NULL OR image = '' ORDER BY productid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepository) SetImage(ctx context.Context, id int64, imageURL string) error {
	query := `UPDATE products SET image=$1, updated_at=$2 WHERE productid=$3`
	tag, err := r.DB.Exec(ctx, query, imageURL, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}
