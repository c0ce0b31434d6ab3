package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type CartRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CartItem, error)
	UpdateQuantity(ctx context.Context, tx *gorm.DB, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return &cartRepo{db: db, log: baseLog.With("repo", "CartRepo")}
}

func (r *cartRepo) Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CartItem
	if err := transaction.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cartRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var item types.CartItem
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) UpdateQuantity(ctx context.Context, tx *gorm.DB, id uuid.UUID, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cartRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.CartItem{}).Error
}

func (r *cartRepo) DeleteForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.CartItem{}).Error
}
