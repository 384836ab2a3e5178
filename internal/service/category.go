package service

import (
	"context"

	"github.com/asilingas/fambudg/internal/domain"
)

// CategoryService manages the shared category tree. Write access is
// scoped by the router: create for admin and member, update and delete
// for admin only.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *req.ParentID); err != nil {
			return nil, domain.ErrValidation("parent category %s does not exist", *req.ParentID)
		}
	}
	return s.categories.Create(ctx, req)
}

func (s *CategoryService) Update(ctx context.Context, id string, req *domain.UpdateCategoryRequest) (*domain.Category, error) {
	if req.Name != nil && len(*req.Name) < 2 {
		return nil, domain.ErrValidation("category name must be at least 2 characters")
	}
	return s.categories.Update(ctx, id, req)
}

// Delete refuses to remove a category that is still referenced by
// transactions.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	used, err := s.categories.HasTransactions(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrConflict("category has transactions and cannot be deleted")
	}
	return s.categories.Delete(ctx, id)
}
