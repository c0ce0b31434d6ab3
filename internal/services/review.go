package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

var ErrReviewNotFound = fmt.Errorf("review not found")

type ReviewService interface {
	Create(ctx context.Context, userID, productID uuid.UUID, rating int, body string) (*types.Review, error)
	GetForProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*types.Review, error)
	Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error
}

type reviewService struct {
	log         *logger.Logger
	reviewRepo  repos.ReviewRepo
	productRepo repos.ProductRepo
}

func NewReviewService(log *logger.Logger, reviewRepo repos.ReviewRepo, productRepo repos.ProductRepo) ReviewService {
	return &reviewService{
		log:         log.With("service", "ReviewService"),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (rs *reviewService) Create(ctx context.Context, userID, productID uuid.UUID, rating int, body string) (*types.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if _, err := rs.productRepo.GetByID(ctx, nil, productID); err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	review := &types.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Body:      strings.TrimSpace(body),
	}
	return rs.reviewRepo.Create(ctx, nil, review)
}

func (rs *reviewService) GetForProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*types.Review, error) {
	return rs.reviewRepo.GetForProduct(ctx, nil, productID, limit, offset)
}

func (rs *reviewService) Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error {
	review, err := rs.reviewRepo.GetByID(ctx, nil, reviewID)
	if err != nil {
		return ErrReviewNotFound
	}
	if !isAdmin && review.UserID != userID {
		return ErrReviewNotFound
	}
	return rs.reviewRepo.Delete(ctx, nil, reviewID)
}
