package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]*types.Category, error)
	Create(ctx context.Context, category *types.Category) (*types.Category, error)
	Update(ctx context.Context, category *types.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
}

func NewCategoryService(log *logger.Logger, categoryRepo repos.CategoryRepo) CategoryService {
	return &categoryService{
		log:          log.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
	}
}

func (cs *categoryService) GetAll(ctx context.Context) ([]*types.Category, error) {
	return cs.categoryRepo.GetAll(ctx, nil)
}

func (cs *categoryService) Create(ctx context.Context, category *types.Category) (*types.Category, error) {
	if category.Name == "" || category.Slug == "" {
		return nil, fmt.Errorf("category name and slug required")
	}
	return cs.categoryRepo.Create(ctx, nil, category)
}

func (cs *categoryService) Update(ctx context.Context, category *types.Category) error {
	return cs.categoryRepo.Update(ctx, nil, category)
}

func (cs *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return cs.categoryRepo.Delete(ctx, nil, id)
}
