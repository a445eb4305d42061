package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
)

type CategoryStore interface {
	Create(ctx context.Context, name, description string) (int64, error)
	List(ctx context.Context) ([]model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CategoryService struct {
	Repo CategoryStore
}

func NewCategoryService(r CategoryStore) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	exists, err := s.Repo.ExistsByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: category already exists", ErrValidation)
	}
	return s.Repo.Create(ctx, name, description)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Repo.List(ctx)
}
