package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type NewsRepo interface {
	Create(ctx context.Context, tx *gorm.DB, news *types.News) (*types.News, error)
	GetPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.News, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.News, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.News, error)
	Update(ctx context.Context, tx *gorm.DB, news *types.News) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type newsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNewsRepo(db *gorm.DB, baseLog *logger.Logger) NewsRepo {
	return &newsRepo{db: db, log: baseLog.With("repo", "NewsRepo")}
}

func (r *newsRepo) Create(ctx context.Context, tx *gorm.DB, news *types.News) (*types.News, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (r *newsRepo) GetPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.News, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	var results []*types.News
	if err := transaction.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at <= ?", time.Now()).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *newsRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.News, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var news types.News
	if err := transaction.WithContext(ctx).
		Where("slug = ?", slug).
		First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.News, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var news types.News
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepo) Update(ctx context.Context, tx *gorm.DB, news *types.News) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(news).Error
}

func (r *newsRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.News{}).Error
}
