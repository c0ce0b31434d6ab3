package app

import (
	"github.com/yungbote/charmworks-backend/internal/handlers"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/sse"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Category    *handlers.CategoryHandler
	Product     *handlers.ProductHandler
	News        *handlers.NewsHandler
	Review      *handlers.ReviewHandler
	Customize   *handlers.CustomizeHandler
	Cart        *handlers.CartHandler
	Order       *handlers.OrderHandler
	Voucher     *handlers.VoucherHandler
	SavedDesign *handlers.SavedDesignHandler
	SSE         *handlers.SSEHandler
	Upload      *handlers.UploadHandler
	Healthcheck *handlers.HealthcheckHandler
}

func wireHandlers(log *logger.Logger, s Services, hub *sse.SSEHub) Handlers {
	h := Handlers{
		Auth:        handlers.NewAuthHandler(s.Auth),
		Category:    handlers.NewCategoryHandler(s.Category),
		Product:     handlers.NewProductHandler(s.Product),
		News:        handlers.NewNewsHandler(s.News),
		Review:      handlers.NewReviewHandler(s.Review),
		Customize:   handlers.NewCustomizeHandler(s.Customize),
		Cart:        handlers.NewCartHandler(s.Cart),
		Order:       handlers.NewOrderHandler(s.Order),
		Voucher:     handlers.NewVoucherHandler(s.Voucher),
		SavedDesign: handlers.NewSavedDesignHandler(s.SavedDesign),
		SSE:         handlers.NewSSEHandler(log, hub),
		Healthcheck: handlers.NewHealthcheckHandler(),
	}
	if s.Bucket != nil {
		h.Upload = handlers.NewUploadHandler(s.Bucket)
	}
	return h
}
