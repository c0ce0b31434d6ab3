package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/sse"
	"github.com/yungbote/charmworks-backend/internal/types"
)

var (
	ErrEmptyCart          = fmt.Errorf("cart is empty")
	ErrOrderNotFound      = fmt.Errorf("order not found")
	ErrInvalidOrderStatus = fmt.Errorf("invalid order status")
)

type CheckoutInput struct {
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
	VoucherCode     string `json:"voucher_code,omitempty"`
}

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*types.Order, error)
	GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Order, error)
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*types.Order, error)
	GetAll(ctx context.Context, status string, limit, offset int) ([]*types.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*types.Order, error)
}

type orderService struct {
	db          *gorm.DB
	log         *logger.Logger
	orderRepo   repos.OrderRepo
	cartRepo    repos.CartRepo
	productRepo repos.ProductRepo
	voucherRepo repos.VoucherRepo
	vouchers    VoucherService
	catalog     CatalogService
	hub         *sse.SSEHub
	engraveFee  float64
}

func NewOrderService(
	db *gorm.DB,
	log *logger.Logger,
	orderRepo repos.OrderRepo,
	cartRepo repos.CartRepo,
	productRepo repos.ProductRepo,
	voucherRepo repos.VoucherRepo,
	vouchers VoucherService,
	catalog CatalogService,
	hub *sse.SSEHub,
	engraveFee float64,
) OrderService {
	return &orderService{
		db:          db,
		log:         log.With("service", "OrderService"),
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		voucherRepo: voucherRepo,
		vouchers:    vouchers,
		catalog:     catalog,
		hub:         hub,
		engraveFee:  engraveFee,
	}
}

// Checkout turns the user's cart into an order inside one transaction. Every
// customized line is repriced against the current registry before totals are
// computed; the voucher is validated and its usage counted in the same
// transaction that creates the order.
func (os *orderService) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := os.cartRepo.GetForUser(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var subtotal float64
		orderItems := make([]types.OrderItem, 0, len(items))
		for _, item := range items {
			unitPrice := item.UnitPrice
			if len(item.Design) > 0 {
				repriced, rpErr := os.repriceDesign(ctx, tx, item)
				if rpErr != nil {
					return rpErr
				}
				unitPrice = repriced
			}
			subtotal += unitPrice * float64(item.Quantity)
			orderItems = append(orderItems, types.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Design:    item.Design,
				UnitPrice: unitPrice,
			})
		}

		var discount float64
		var voucherCode string
		if input.VoucherCode != "" {
			voucher, d, vErr := os.vouchers.Validate(ctx, tx, input.VoucherCode, subtotal)
			if vErr != nil {
				return vErr
			}
			discount = d
			voucherCode = voucher.Code
			if iErr := os.voucherRepo.IncrementUsed(ctx, tx, voucher.ID); iErr != nil {
				return fmt.Errorf("increment voucher usage: %w", iErr)
			}
		}

		order = &types.Order{
			UserID:          userID,
			Status:          types.OrderStatusPending,
			Subtotal:        subtotal,
			Discount:        discount,
			Total:           subtotal - discount,
			VoucherCode:     voucherCode,
			ShippingName:    input.ShippingName,
			ShippingPhone:   input.ShippingPhone,
			ShippingAddress: input.ShippingAddress,
			Items:           orderItems,
		}
		if _, cErr := os.orderRepo.Create(ctx, tx, order); cErr != nil {
			return fmt.Errorf("create order: %w", cErr)
		}
		if dErr := os.cartRepo.DeleteForUser(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("clear cart: %w", dErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	os.log.Info("Order placed", "order_id", order.ID, "user_id", userID, "total", order.Total)
	os.hub.BroadcastToUser(userID, sse.SSEEventOrderCreated, order)
	return order, nil
}

// repriceDesign rebuilds a stored design against the live registry so a price
// change between add-to-cart and checkout is always reflected in the order.
func (os *orderService) repriceDesign(ctx context.Context, tx *gorm.DB, item *types.CartItem) (float64, error) {
	line, err := engine.DecodeCartLine(item.Design)
	if err != nil {
		return 0, fmt.Errorf("cart item %s: %w", item.ID, err)
	}
	product, err := os.productRepo.GetByID(ctx, tx, item.ProductID)
	if err != nil {
		return 0, fmt.Errorf("load product for cart item %s: %w", item.ID, err)
	}
	reg, err := os.catalog.RegistryForProduct(ctx, item.ProductID)
	if err != nil {
		return 0, err
	}
	restored := engine.FromCartLine(reg, line, product.BasePrice, os.engraveFee)
	if restored.PartiallyRestored {
		os.log.Warn("Checkout dropped discontinued design references", "cart_item_id", item.ID, "missing", restored.MissingRefs)
	}
	return restored.Doc.UnitPrice, nil
}

func (os *orderService) GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Order, error) {
	return os.orderRepo.GetForUser(ctx, nil, userID)
}

func (os *orderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*types.Order, error) {
	order, err := os.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (os *orderService) GetAll(ctx context.Context, status string, limit, offset int) ([]*types.Order, error) {
	return os.orderRepo.GetAll(ctx, nil, status, limit, offset)
}

func validOrderStatus(status string) bool {
	switch status {
	case types.OrderStatusPending, types.OrderStatusPaid, types.OrderStatusShipped,
		types.OrderStatusDone, types.OrderStatusCancelled:
		return true
	}
	return false
}

func (os *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*types.Order, error) {
	if !validOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := os.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if err := os.orderRepo.UpdateStatus(ctx, nil, orderID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status
	os.hub.BroadcastToUser(order.UserID, sse.SSEEventOrderStatusChanged, map[string]any{
		"order_id": order.ID,
		"status":   status,
	})
	return order, nil
}
