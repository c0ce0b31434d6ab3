package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/types"
)

// ProductDetail is the storefront product page payload: the product, similar
// items from the same category and, for customizable products, the template
// and accessory catalog the configurator starts from.
type ProductDetail struct {
	Product     *types.Product     `json:"product"`
	Similar     []*types.Product   `json:"similar,omitempty"`
	Reviews     []*types.Review    `json:"reviews,omitempty"`
	Templates   []engine.Template  `json:"templates,omitempty"`
	Accessories []engine.Accessory `json:"accessories,omitempty"`
}

type ProductService interface {
	GetActive(ctx context.Context, categoryID *uuid.UUID) ([]*types.Product, error)
	GetDetail(ctx context.Context, slug string) (*ProductDetail, error)
	Create(ctx context.Context, product *types.Product) (*types.Product, error)
	Update(ctx context.Context, product *types.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateTemplate(ctx context.Context, template *types.Template) (*types.Template, error)
	UpdateTemplate(ctx context.Context, template *types.Template) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	CreateAccessory(ctx context.Context, accessory *types.Accessory) (*types.Accessory, error)
	UpdateAccessory(ctx context.Context, accessory *types.Accessory) error
	DeleteAccessory(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	db            *gorm.DB
	log           *logger.Logger
	productRepo   repos.ProductRepo
	templateRepo  repos.TemplateRepo
	accessoryRepo repos.AccessoryRepo
	reviewRepo    repos.ReviewRepo
	catalog       CatalogService
}

func NewProductService(
	db *gorm.DB,
	log *logger.Logger,
	productRepo repos.ProductRepo,
	templateRepo repos.TemplateRepo,
	accessoryRepo repos.AccessoryRepo,
	reviewRepo repos.ReviewRepo,
	catalog CatalogService,
) ProductService {
	return &productService{
		db:            db,
		log:           log.With("service", "ProductService"),
		productRepo:   productRepo,
		templateRepo:  templateRepo,
		accessoryRepo: accessoryRepo,
		reviewRepo:    reviewRepo,
		catalog:       catalog,
	}
}

func (ps *productService) GetActive(ctx context.Context, categoryID *uuid.UUID) ([]*types.Product, error) {
	return ps.productRepo.GetActive(ctx, nil, categoryID)
}

func (ps *productService) GetDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := ps.productRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	detail := &ProductDetail{Product: product}

	similar, err := ps.productRepo.GetSimilar(ctx, nil, product, 4)
	if err != nil {
		ps.log.Warn("Failed to load similar products", "error", err, "product_id", product.ID)
	} else {
		detail.Similar = similar
	}

	reviews, err := ps.reviewRepo.GetForProduct(ctx, nil, product.ID, 10, 0)
	if err != nil {
		ps.log.Warn("Failed to load reviews", "error", err, "product_id", product.ID)
	} else {
		detail.Reviews = reviews
	}

	if product.Customizable {
		templates, tErr := ps.catalog.TemplatesForProduct(ctx, product.ID)
		if tErr != nil {
			return nil, tErr
		}
		accessories, aErr := ps.catalog.Accessories(ctx)
		if aErr != nil {
			return nil, aErr
		}
		detail.Templates = templates
		detail.Accessories = accessories
	}
	return detail, nil
}

func (ps *productService) Create(ctx context.Context, product *types.Product) (*types.Product, error) {
	if product.Name == "" || product.Slug == "" {
		return nil, fmt.Errorf("product name and slug required")
	}
	return ps.productRepo.Create(ctx, nil, product)
}

func (ps *productService) Update(ctx context.Context, product *types.Product) error {
	if err := ps.productRepo.Update(ctx, nil, product); err != nil {
		return err
	}
	ps.catalog.InvalidateProduct(ctx, product.ID)
	return nil
}

func (ps *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ps.productRepo.Delete(ctx, nil, id); err != nil {
		return err
	}
	ps.catalog.InvalidateProduct(ctx, id)
	return nil
}

func (ps *productService) CreateTemplate(ctx context.Context, template *types.Template) (*types.Template, error) {
	if template.Key == "" || template.ProductID == uuid.Nil {
		return nil, fmt.Errorf("template key and product id required")
	}
	created, err := ps.templateRepo.Create(ctx, nil, template)
	if err != nil {
		return nil, err
	}
	ps.catalog.InvalidateProduct(ctx, template.ProductID)
	return created, nil
}

func (ps *productService) UpdateTemplate(ctx context.Context, template *types.Template) error {
	if err := ps.templateRepo.Update(ctx, nil, template); err != nil {
		return err
	}
	ps.catalog.InvalidateProduct(ctx, template.ProductID)
	return nil
}

func (ps *productService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := ps.templateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if err := ps.templateRepo.Delete(ctx, nil, id); err != nil {
		return err
	}
	ps.catalog.InvalidateProduct(ctx, template.ProductID)
	return nil
}

func (ps *productService) CreateAccessory(ctx context.Context, accessory *types.Accessory) (*types.Accessory, error) {
	if accessory.Key == "" {
		return nil, fmt.Errorf("accessory key required")
	}
	created, err := ps.accessoryRepo.Create(ctx, nil, accessory)
	if err != nil {
		return nil, err
	}
	ps.catalog.InvalidateAccessories(ctx)
	return created, nil
}

func (ps *productService) UpdateAccessory(ctx context.Context, accessory *types.Accessory) error {
	if err := ps.accessoryRepo.Update(ctx, nil, accessory); err != nil {
		return err
	}
	ps.catalog.InvalidateAccessories(ctx)
	return nil
}

func (ps *productService) DeleteAccessory(ctx context.Context, id uuid.UUID) error {
	if err := ps.accessoryRepo.Delete(ctx, nil, id); err != nil {
		return err
	}
	ps.catalog.InvalidateAccessories(ctx)
	return nil
}
