package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/types"
)

type stubVoucherRepo struct {
	voucher *types.Voucher
	err     error
	created *types.Voucher
}

func (s *stubVoucherRepo) Create(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) (*types.Voucher, error) {
	s.created = voucher
	return voucher, nil
}

func (s *stubVoucherRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Voucher, error) {
	return nil, nil
}

func (s *stubVoucherRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Voucher, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.voucher, nil
}

func (s *stubVoucherRepo) Update(ctx context.Context, tx *gorm.DB, voucher *types.Voucher) error {
	return nil
}

func (s *stubVoucherRepo) IncrementUsed(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func (s *stubVoucherRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func newVoucherServiceWith(t *testing.T, repo *stubVoucherRepo) VoucherService {
	t.Helper()
	return NewVoucherService(nil, testLogger(t), repo)
}

func TestVoucherValidatePercent(t *testing.T) {
	svc := newVoucherServiceWith(t, &stubVoucherRepo{voucher: &types.Voucher{
		Code: "SPRING10", Kind: types.VoucherKindPercent, Amount: 10, Active: true,
	}})

	_, discount, err := svc.Validate(context.Background(), nil, "SPRING10", 200)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if math.Abs(discount-20) > 1e-9 {
		t.Fatalf("expected discount 20, got %v", discount)
	}
}

func TestVoucherValidateFixedClampsToSubtotal(t *testing.T) {
	svc := newVoucherServiceWith(t, &stubVoucherRepo{voucher: &types.Voucher{
		Code: "FLAT50", Kind: types.VoucherKindFixed, Amount: 50, Active: true,
	}})

	_, discount, err := svc.Validate(context.Background(), nil, "FLAT50", 30)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if math.Abs(discount-30) > 1e-9 {
		t.Fatalf("fixed discount should clamp to subtotal, got %v", discount)
	}
}

func TestVoucherValidateRejections(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name     string
		repo     *stubVoucherRepo
		subtotal float64
		want     error
	}{
		{
			name: "unknown code",
			repo: &stubVoucherRepo{err: gorm.ErrRecordNotFound},
			want: ErrVoucherNotFound,
		},
		{
			name: "inactive",
			repo: &stubVoucherRepo{voucher: &types.Voucher{
				Kind: types.VoucherKindPercent, Amount: 10,
			}},
			want: ErrVoucherInactive,
		},
		{
			name: "expired",
			repo: &stubVoucherRepo{voucher: &types.Voucher{
				Kind: types.VoucherKindPercent, Amount: 10, Active: true, ExpiresAt: &past,
			}},
			want: ErrVoucherExpired,
		},
		{
			name: "usage limit reached",
			repo: &stubVoucherRepo{voucher: &types.Voucher{
				Kind: types.VoucherKindPercent, Amount: 10, Active: true,
				UsageLimit: 5, UsedCount: 5,
			}},
			want: ErrVoucherExhausted,
		},
		{
			name: "below minimum order",
			repo: &stubVoucherRepo{voucher: &types.Voucher{
				Kind: types.VoucherKindPercent, Amount: 10, Active: true, MinOrder: 100,
			}},
			subtotal: 40,
			want:     ErrVoucherMinOrder,
		},
		{
			name: "unknown kind",
			repo: &stubVoucherRepo{voucher: &types.Voucher{
				Kind: "mystery", Amount: 10, Active: true,
			}},
			want: ErrVoucherBadPayload,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newVoucherServiceWith(t, tc.repo)
			subtotal := tc.subtotal
			if subtotal == 0 {
				subtotal = 200
			}
			_, _, err := svc.Validate(context.Background(), nil, "CODE", subtotal)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestVoucherCreateValidation(t *testing.T) {
	repo := &stubVoucherRepo{}
	svc := newVoucherServiceWith(t, repo)

	if _, err := svc.Create(context.Background(), &types.Voucher{Code: "X", Kind: "mystery", Amount: 10}); !errors.Is(err, ErrVoucherBadPayload) {
		t.Fatalf("expected bad payload for unknown kind, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &types.Voucher{Code: "X", Kind: types.VoucherKindPercent, Amount: 150}); err == nil {
		t.Fatal("expected error for percent over 100")
	}
	if _, err := svc.Create(context.Background(), &types.Voucher{Code: "  ", Kind: types.VoucherKindFixed, Amount: 10}); err == nil {
		t.Fatal("expected error for blank code")
	}

	created, err := svc.Create(context.Background(), &types.Voucher{Code: " welcome ", Kind: types.VoucherKindFixed, Amount: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Code != "WELCOME" {
		t.Fatalf("code should be normalized, got %q", created.Code)
	}
}
