package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/charmworks-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, m Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:        h.Auth,
		AuthMiddleware:     m.Auth,
		CategoryHandler:    h.Category,
		ProductHandler:     h.Product,
		NewsHandler:        h.News,
		ReviewHandler:      h.Review,
		CustomizeHandler:   h.Customize,
		CartHandler:        h.Cart,
		OrderHandler:       h.Order,
		VoucherHandler:     h.Voucher,
		SavedDesignHandler: h.SavedDesign,
		SSEHandler:         h.SSE,
		UploadHandler:      h.Upload,
		Healthcheck:        h.Healthcheck,
		CORSOrigins:        cfg.CORSOrigins,
		ServiceName:        "charmworks",
	})
}
