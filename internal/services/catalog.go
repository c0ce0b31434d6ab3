package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	redisclient "github.com/yungbote/charmworks-backend/internal/clients/redis"
	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

// accessoriesCacheKey holds the product-independent accessory list.
var accessoriesCacheKey = uuid.Nil

// CatalogService loads template and accessory registries for the
// customization engine, with a redis cache in front of postgres. It
// implements engine.CatalogSource.
type CatalogService interface {
	TemplatesForProduct(ctx context.Context, productID uuid.UUID) ([]engine.Template, error)
	Accessories(ctx context.Context) ([]engine.Accessory, error)
	RegistryForProduct(ctx context.Context, productID uuid.UUID) (*engine.Registry, error)
	AssetCatalogForProduct(ctx context.Context, productID uuid.UUID) (*engine.AssetCatalog, error)
	InvalidateProduct(ctx context.Context, productID uuid.UUID)
	InvalidateAccessories(ctx context.Context)
}

type catalogService struct {
	log           *logger.Logger
	templateRepo  repos.TemplateRepo
	accessoryRepo repos.AccessoryRepo
	cache         redisclient.CatalogCache
}

func NewCatalogService(
	log *logger.Logger,
	templateRepo repos.TemplateRepo,
	accessoryRepo repos.AccessoryRepo,
	cache redisclient.CatalogCache,
) CatalogService {
	return &catalogService{
		log:           log.With("service", "CatalogService"),
		templateRepo:  templateRepo,
		accessoryRepo: accessoryRepo,
		cache:         cache,
	}
}

func (cs *catalogService) TemplatesForProduct(ctx context.Context, productID uuid.UUID) ([]engine.Template, error) {
	if cs.cache != nil {
		if snap, ok := cs.cache.GetRegistry(ctx, productID); ok {
			return snap.Templates, nil
		}
	}
	rows, err := cs.templateRepo.GetActiveForProduct(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("load templates for product: %w", err)
	}
	templates := make([]engine.Template, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, templateToEngine(row))
	}
	if cs.cache != nil {
		if err := cs.cache.SetRegistry(ctx, productID, &redisclient.RegistrySnapshot{Templates: templates}); err != nil {
			cs.log.Warn("Failed to cache templates", "error", err, "product_id", productID)
		}
	}
	return templates, nil
}

func (cs *catalogService) Accessories(ctx context.Context) ([]engine.Accessory, error) {
	if cs.cache != nil {
		if snap, ok := cs.cache.GetRegistry(ctx, accessoriesCacheKey); ok {
			return snap.Accessories, nil
		}
	}
	rows, err := cs.accessoryRepo.GetActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load accessories: %w", err)
	}
	accessories := make([]engine.Accessory, 0, len(rows))
	for _, row := range rows {
		accessories = append(accessories, accessoryToEngine(row))
	}
	if cs.cache != nil {
		if err := cs.cache.SetRegistry(ctx, accessoriesCacheKey, &redisclient.RegistrySnapshot{Accessories: accessories}); err != nil {
			cs.log.Warn("Failed to cache accessories", "error", err)
		}
	}
	return accessories, nil
}

// RegistryForProduct loads templates and accessories in parallel and builds an
// immutable registry snapshot.
func (cs *catalogService) RegistryForProduct(ctx context.Context, productID uuid.UUID) (*engine.Registry, error) {
	var (
		templates   []engine.Template
		accessories []engine.Accessory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		templates, err = cs.TemplatesForProduct(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		accessories, err = cs.Accessories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return engine.NewRegistry(templates, accessories), nil
}

// AssetCatalogForProduct maps template ids to their preview asset keys so both
// render adapters swap artwork and model in lockstep.
func (cs *catalogService) AssetCatalogForProduct(ctx context.Context, productID uuid.UUID) (*engine.AssetCatalog, error) {
	templates, err := cs.TemplatesForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	assets := make(map[string]string, len(templates))
	for _, t := range templates {
		assets[t.ID] = t.PreviewKey
	}
	return engine.NewAssetCatalog(assets, ""), nil
}

func (cs *catalogService) InvalidateProduct(ctx context.Context, productID uuid.UUID) {
	if cs.cache == nil {
		return
	}
	if err := cs.cache.Invalidate(ctx, productID); err != nil {
		cs.log.Warn("Failed to invalidate product registry cache", "error", err, "product_id", productID)
	}
}

func (cs *catalogService) InvalidateAccessories(ctx context.Context) {
	if cs.cache == nil {
		return
	}
	if err := cs.cache.Invalidate(ctx, accessoriesCacheKey); err != nil {
		cs.log.Warn("Failed to invalidate accessory cache", "error", err)
	}
}

func templateToEngine(row *types.Template) engine.Template {
	colors := make(map[engine.ColorSlot]string, 3)
	if row.BandColor != "" {
		colors[engine.SlotBand] = row.BandColor
	}
	if row.FaceColor != "" {
		colors[engine.SlotFace] = row.FaceColor
	}
	if row.RimColor != "" {
		colors[engine.SlotRim] = row.RimColor
	}
	var recommended []string
	if len(row.Recommended) > 0 {
		_ = json.Unmarshal(row.Recommended, &recommended)
	}
	return engine.Template{
		ID:            row.Key,
		Name:          row.Name,
		BasePrice:     row.BasePrice,
		DefaultColors: colors,
		Recommended:   recommended,
		PreviewKey:    row.PreviewKey,
	}
}

func accessoryToEngine(row *types.Accessory) engine.Accessory {
	return engine.Accessory{
		ID:          row.Key,
		DisplayName: row.DisplayName,
		VisualKey:   row.VisualKey,
		UnitPrice:   row.UnitPrice,
	}
}
