package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ProductStore interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, f model.ProductFilter) (*model.ProductPage, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductService struct {
	Repo ProductStore
}

func NewProductService(r ProductStore) *ProductService {
	return &ProductService{Repo: r}
}

// NormalizeFilter clamps pagination to page >= 1 and
// 1 <= page_size <= 100 (default 10) and trims the search term.
func NormalizeFilter(f model.ProductFilter) model.ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

func (s *ProductService) List(ctx context.Context, f model.ProductFilter) (*model.ProductPage, error) {
	return s.Repo.List(ctx, NormalizeFilter(f))
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}
	return p, nil
}

func (s *ProductService) validate(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return fmt.Errorf("%w: product", ErrNotFound)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: product", ErrNotFound)
	}
	return nil
}
