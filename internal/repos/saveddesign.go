package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type SavedDesignRepo interface {
	Create(ctx context.Context, tx *gorm.DB, design *types.SavedDesign) (*types.SavedDesign, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedDesign, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SavedDesign, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type savedDesignRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSavedDesignRepo(db *gorm.DB, baseLog *logger.Logger) SavedDesignRepo {
	return &savedDesignRepo{db: db, log: baseLog.With("repo", "SavedDesignRepo")}
}

func (r *savedDesignRepo) Create(ctx context.Context, tx *gorm.DB, design *types.SavedDesign) (*types.SavedDesign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(design).Error; err != nil {
		return nil, err
	}
	return design, nil
}

func (r *savedDesignRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedDesign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SavedDesign
	if err := transaction.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *savedDesignRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SavedDesign, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var design types.SavedDesign
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&design).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *savedDesignRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.SavedDesign{}).Error
}
