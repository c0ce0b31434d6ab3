package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Order, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Order, error)
	GetAll(ctx context.Context, tx *gorm.DB, status string, limit, offset int) ([]*types.Order, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Order
	if err := transaction.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var order types.Order
	if err := transaction.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) GetAll(ctx context.Context, tx *gorm.DB, status string, limit, offset int) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := transaction.WithContext(ctx).Preload("Items")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var results []*types.Order
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
