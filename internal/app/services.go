package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/services"
	"github.com/yungbote/charmworks-backend/internal/sse"
)

type Services struct {
	Auth        services.AuthService
	Catalog     services.CatalogService
	Category    services.CategoryService
	Product     services.ProductService
	News        services.NewsService
	Review      services.ReviewService
	Customize   services.CustomizeService
	Cart        services.CartService
	Voucher     services.VoucherService
	Order       services.OrderService
	SavedDesign services.SavedDesignService
	Bucket      services.BucketService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, c Clients, hub *sse.SSEHub) Services {
	catalog := services.NewCatalogService(log, r.Template, r.Accessory, c.CatalogCache)
	voucher := services.NewVoucherService(db, log, r.Voucher)
	customize := services.NewCustomizeService(log, r.Product, catalog, hub, cfg.EngraveFee)

	bucket, err := services.NewBucketService(log)
	if err != nil {
		log.Warn("Bucket service unavailable, uploads disabled", "error", err)
		bucket = nil
	}

	return Services{
		Auth:        services.NewAuthService(db, log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Catalog:     catalog,
		Category:    services.NewCategoryService(log, r.Category),
		Product:     services.NewProductService(db, log, r.Product, r.Template, r.Accessory, r.Review, catalog),
		News:        services.NewNewsService(log, r.News),
		Review:      services.NewReviewService(log, r.Review, r.Product),
		Customize:   customize,
		Cart:        services.NewCartService(db, log, r.Cart, r.Product, catalog, hub, cfg.EngraveFee),
		Voucher:     voucher,
		Order:       services.NewOrderService(db, log, r.Order, r.Cart, r.Product, r.Voucher, voucher, catalog, hub, cfg.EngraveFee),
		SavedDesign: services.NewSavedDesignService(log, r.SavedDesign, customize, hub),
		Bucket:      bucket,
	}
}
