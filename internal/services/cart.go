package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/sse"
	"github.com/yungbote/charmworks-backend/internal/types"
)

var ErrCartItemNotFound = fmt.Errorf("cart item not found")

type CartService interface {
	AddDesign(ctx context.Context, userID uuid.UUID, line engine.CartLine) (*types.CartItem, error)
	AddProduct(ctx context.Context, userID, productID uuid.UUID, quantity int) (*types.CartItem, error)
	GetCart(ctx context.Context, userID uuid.UUID) ([]*types.CartItem, float64, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	db          *gorm.DB
	log         *logger.Logger
	cartRepo    repos.CartRepo
	productRepo repos.ProductRepo
	catalog     CatalogService
	hub         *sse.SSEHub
	engraveFee  float64
}

func NewCartService(
	db *gorm.DB,
	log *logger.Logger,
	cartRepo repos.CartRepo,
	productRepo repos.ProductRepo,
	catalog CatalogService,
	hub *sse.SSEHub,
	engraveFee float64,
) CartService {
	return &cartService{
		db:          db,
		log:         log.With("service", "CartService"),
		cartRepo:    cartRepo,
		productRepo: productRepo,
		catalog:     catalog,
		hub:         hub,
		engraveFee:  engraveFee,
	}
}

// AddDesign persists a customized design as a cart line. The submitted price
// is advisory only; the line is rebuilt against the current registry and the
// unit price recomputed server-side before anything is stored.
func (cs *cartService) AddDesign(ctx context.Context, userID uuid.UUID, line engine.CartLine) (*types.CartItem, error) {
	product, err := cs.productRepo.GetByID(ctx, nil, line.ProductID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if !product.Customizable {
		return nil, ErrProductNotCustomizable
	}
	reg, err := cs.catalog.RegistryForProduct(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}

	restored := engine.FromCartLine(reg, line, product.BasePrice, cs.engraveFee)
	if restored.PartiallyRestored {
		cs.log.Warn("Cart line referenced discontinued catalog entries", "user_id", userID, "missing", restored.MissingRefs)
	}
	validated := engine.ToCartLine(restored.Doc, line.Quantity)
	payload, err := engine.EncodeCartLine(validated)
	if err != nil {
		return nil, err
	}

	item := &types.CartItem{
		UserID:    userID,
		ProductID: line.ProductID,
		Quantity:  validated.Quantity,
		Design:    datatypes.JSON(payload),
		UnitPrice: validated.UnitPrice,
	}
	created, err := cs.cartRepo.Create(ctx, nil, item)
	if err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	cs.hub.BroadcastToUser(userID, sse.SSEEventCartUpdated, created)
	return created, nil
}

// AddProduct adds an off-the-shelf, non-customized product at its base price.
func (cs *cartService) AddProduct(ctx context.Context, userID, productID uuid.UUID, quantity int) (*types.CartItem, error) {
	product, err := cs.productRepo.GetByID(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if quantity < 1 {
		quantity = 1
	}
	item := &types.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.BasePrice,
	}
	created, err := cs.cartRepo.Create(ctx, nil, item)
	if err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	cs.hub.BroadcastToUser(userID, sse.SSEEventCartUpdated, created)
	return created, nil
}

func (cs *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*types.CartItem, float64, error) {
	items, err := cs.cartRepo.GetForUser(ctx, nil, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("load cart: %w", err)
	}
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return items, subtotal, nil
}

func (cs *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return cs.Remove(ctx, userID, itemID)
	}
	item, err := cs.cartRepo.GetByID(ctx, nil, itemID)
	if err != nil || item.UserID != userID {
		return ErrCartItemNotFound
	}
	if err := cs.cartRepo.UpdateQuantity(ctx, nil, itemID, quantity); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	cs.hub.BroadcastToUser(userID, sse.SSEEventCartUpdated, map[string]any{"item_id": itemID, "quantity": quantity})
	return nil
}

func (cs *cartService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := cs.cartRepo.GetByID(ctx, nil, itemID)
	if err != nil || item.UserID != userID {
		return ErrCartItemNotFound
	}
	if err := cs.cartRepo.Delete(ctx, nil, itemID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	cs.hub.BroadcastToUser(userID, sse.SSEEventCartUpdated, map[string]any{"item_id": itemID, "removed": true})
	return nil
}

func (cs *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := cs.cartRepo.DeleteForUser(ctx, nil, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	cs.hub.BroadcastToUser(userID, sse.SSEEventCartUpdated, map[string]any{"cleared": true})
	return nil
}
