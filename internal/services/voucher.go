package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

var (
	ErrVoucherNotFound   = fmt.Errorf("voucher not found")
	ErrVoucherExpired    = fmt.Errorf("voucher expired")
	ErrVoucherExhausted  = fmt.Errorf("voucher usage limit reached")
	ErrVoucherMinOrder   = fmt.Errorf("order subtotal below voucher minimum")
	ErrVoucherInactive   = fmt.Errorf("voucher inactive")
	ErrVoucherBadPayload = fmt.Errorf("invalid voucher definition")
)

type VoucherService interface {
	Validate(ctx context.Context, tx *gorm.DB, code string, subtotal float64) (*types.Voucher, float64, error)
	Create(ctx context.Context, voucher *types.Voucher) (*types.Voucher, error)
	GetAll(ctx context.Context) ([]*types.Voucher, error)
	Update(ctx context.Context, voucher *types.Voucher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type voucherService struct {
	db          *gorm.DB
	log         *logger.Logger
	voucherRepo repos.VoucherRepo
}

func NewVoucherService(db *gorm.DB, log *logger.Logger, voucherRepo repos.VoucherRepo) VoucherService {
	return &voucherService{
		db:          db,
		log:         log.With("service", "VoucherService"),
		voucherRepo: voucherRepo,
	}
}

// Validate checks a code against the current subtotal and returns the voucher
// plus the discount it grants. The discount never exceeds the subtotal.
func (vs *voucherService) Validate(ctx context.Context, tx *gorm.DB, code string, subtotal float64) (*types.Voucher, float64, error) {
	voucher, err := vs.voucherRepo.GetByCode(ctx, tx, code)
	if err != nil {
		return nil, 0, ErrVoucherNotFound
	}
	if !voucher.Active {
		return nil, 0, ErrVoucherInactive
	}
	if voucher.ExpiresAt != nil && voucher.ExpiresAt.Before(time.Now()) {
		return nil, 0, ErrVoucherExpired
	}
	if voucher.UsageLimit > 0 && voucher.UsedCount >= voucher.UsageLimit {
		return nil, 0, ErrVoucherExhausted
	}
	if subtotal < voucher.MinOrder {
		return nil, 0, ErrVoucherMinOrder
	}

	var discount float64
	switch voucher.Kind {
	case types.VoucherKindPercent:
		discount = subtotal * voucher.Amount / 100
	case types.VoucherKindFixed:
		discount = voucher.Amount
	default:
		return nil, 0, ErrVoucherBadPayload
	}
	discount = math.Min(discount, subtotal)
	if discount < 0 {
		discount = 0
	}
	return voucher, discount, nil
}

func (vs *voucherService) Create(ctx context.Context, voucher *types.Voucher) (*types.Voucher, error) {
	voucher.Code = strings.ToUpper(strings.TrimSpace(voucher.Code))
	if voucher.Code == "" {
		return nil, fmt.Errorf("voucher code required")
	}
	if voucher.Kind != types.VoucherKindPercent && voucher.Kind != types.VoucherKindFixed {
		return nil, ErrVoucherBadPayload
	}
	if voucher.Amount <= 0 {
		return nil, fmt.Errorf("voucher amount must be positive")
	}
	if voucher.Kind == types.VoucherKindPercent && voucher.Amount > 100 {
		return nil, fmt.Errorf("percent voucher cannot exceed 100")
	}
	return vs.voucherRepo.Create(ctx, nil, voucher)
}

func (vs *voucherService) GetAll(ctx context.Context) ([]*types.Voucher, error) {
	return vs.voucherRepo.GetAll(ctx, nil)
}

func (vs *voucherService) Update(ctx context.Context, voucher *types.Voucher) error {
	return vs.voucherRepo.Update(ctx, nil, voucher)
}

func (vs *voucherService) Delete(ctx context.Context, id uuid.UUID) error {
	return vs.voucherRepo.Delete(ctx, nil, id)
}
