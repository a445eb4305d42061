package repository

import (
	"context"
	"errors"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name, description string) (int64, error) {
	var id int64
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING categoryid`
	if err := r.DB.QueryRow(ctx, query, name, description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	query := `SELECT categoryid, name, COALESCE(description, '') FROM categories WHERE categoryid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.CategoryID, &c.Name, &c.Description); err != nil {
		return nil, errors.New("category not found")
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT categoryid, name, COALESCE(description, '') FROM categories ORDER BY categoryid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name=$1)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
