package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type VoucherRepo interface {
	Create(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) (*types.Voucher, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Voucher, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Voucher, error)
	Update(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) error
	IncrementUsed(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type voucherRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVoucherRepo(db *gorm.DB, baseLog *logger.Logger) VoucherRepo {
	return &voucherRepo{db: db, log: baseLog.With("repo", "VoucherRepo")}
}

func (r *voucherRepo) Create(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) (*types.Voucher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	voucher.Code = strings.ToUpper(strings.TrimSpace(voucher.Code))
	if err := transaction.WithContext(ctx).Create(voucher).Error; err != nil {
		return nil, err
	}
	return voucher, nil
}

func (r *voucherRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Voucher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Voucher
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *voucherRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Voucher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var voucher types.Voucher
	if err := transaction.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&voucher).Error; err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *voucherRepo) Update(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(voucher).Error
}

func (r *voucherRepo) IncrementUsed(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Voucher{}).
		Where("id = ?", id).
		Update("used_count", gorm.Expr("used_count + 1")).Error
}

func (r *voucherRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Voucher{}).Error
}
