package service

import (
	"context"
	"fmt"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/repository"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &model.InventoryCategory{
		Name: req.Name,
		Type: req.Type,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return s.categoryToResponse(ctx, category), nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: category", apierror.ErrNotFound)
	}
	return s.categoryToResponse(ctx, category), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, *s.categoryToResponse(ctx, &categories[i]))
	}
	return resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: category", apierror.ErrNotFound)
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Type != "" {
		category.Type = req.Type
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return s.categoryToResponse(ctx, category), nil
}

// Delete refuses to orphan items: a category still referenced by inventory
// cannot be removed.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: category", apierror.ErrNotFound)
	}
	count, err := s.repo.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category still has %d items", apierror.ErrConflict, count)
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) categoryToResponse(ctx context.Context, c *model.InventoryCategory) *dto.CategoryResponse {
	count, _ := s.repo.CountItems(ctx, c.ID)
	return &dto.CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      c.Type,
		ItemCount: count,
	}
}
