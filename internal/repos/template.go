package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type TemplateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, template *types.Template) (*types.Template, error)
	GetActiveForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Template, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Template, error)
	Update(ctx context.Context, tx *gorm.DB, template *types.Template) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type templateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTemplateRepo(db *gorm.DB, baseLog *logger.Logger) TemplateRepo {
	return &templateRepo{db: db, log: baseLog.With("repo", "TemplateRepo")}
}

func (r *templateRepo) Create(ctx context.Context, tx *gorm.DB, template *types.Template) (*types.Template, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

func (r *templateRepo) GetActiveForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Template, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Template
	if err := transaction.WithContext(ctx).
		Where("product_id = ? AND active = true", productID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *templateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Template, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var template types.Template
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepo) Update(ctx context.Context, tx *gorm.DB, template *types.Template) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(template).Error
}

func (r *templateRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Template{}).Error
}

type AccessoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) (*types.Accessory, error)
	GetActive(ctx context.Context, tx *gorm.DB) ([]*types.Accessory, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Accessory, error)
	Update(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type accessoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccessoryRepo(db *gorm.DB, baseLog *logger.Logger) AccessoryRepo {
	return &accessoryRepo{db: db, log: baseLog.With("repo", "AccessoryRepo")}
}

func (r *accessoryRepo) Create(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) (*types.Accessory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(accessory).Error; err != nil {
		return nil, err
	}
	return accessory, nil
}

func (r *accessoryRepo) GetActive(ctx context.Context, tx *gorm.DB) ([]*types.Accessory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Accessory
	if err := transaction.WithContext(ctx).
		Where("active = true").
		Order("display_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *accessoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Accessory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var accessory types.Accessory
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&accessory).Error; err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (r *accessoryRepo) Update(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(accessory).Error
}

func (r *accessoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Accessory{}).Error
}
