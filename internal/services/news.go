package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type NewsService interface {
	GetPublished(ctx context.Context, limit, offset int) ([]*types.News, error)
	GetBySlug(ctx context.Context, slug string) (*types.News, error)
	Create(ctx context.Context, news *types.News) (*types.News, error)
	Update(ctx context.Context, news *types.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsService struct {
	log      *logger.Logger
	newsRepo repos.NewsRepo
}

func NewNewsService(log *logger.Logger, newsRepo repos.NewsRepo) NewsService {
	return &newsService{
		log:      log.With("service", "NewsService"),
		newsRepo: newsRepo,
	}
}

func (ns *newsService) GetPublished(ctx context.Context, limit, offset int) ([]*types.News, error) {
	return ns.newsRepo.GetPublished(ctx, nil, limit, offset)
}

func (ns *newsService) GetBySlug(ctx context.Context, slug string) (*types.News, error) {
	return ns.newsRepo.GetBySlug(ctx, nil, slug)
}

func (ns *newsService) Create(ctx context.Context, news *types.News) (*types.News, error) {
	if news.Title == "" || news.Slug == "" {
		return nil, fmt.Errorf("news title and slug required")
	}
	return ns.newsRepo.Create(ctx, nil, news)
}

func (ns *newsService) Update(ctx context.Context, news *types.News) error {
	return ns.newsRepo.Update(ctx, nil, news)
}

func (ns *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	return ns.newsRepo.Delete(ctx, nil, id)
}
