package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/charmworks-backend/internal/handlers"
	"github.com/yungbote/charmworks-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	CategoryHandler    *handlers.CategoryHandler
	ProductHandler     *handlers.ProductHandler
	NewsHandler        *handlers.NewsHandler
	ReviewHandler      *handlers.ReviewHandler
	CustomizeHandler   *handlers.CustomizeHandler
	CartHandler        *handlers.CartHandler
	OrderHandler       *handlers.OrderHandler
	VoucherHandler     *handlers.VoucherHandler
	SavedDesignHandler *handlers.SavedDesignHandler
	SSEHandler         *handlers.SSEHandler
	UploadHandler      *handlers.UploadHandler
	Healthcheck        *handlers.HealthcheckHandler
	CORSOrigins        []string
	ServiceName        string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "charmworks"
	}
	router.Use(otelgin.Middleware(serviceName))

	router.GET("/healthcheck", cfg.Healthcheck.Check)

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)

		api.GET("/categories", cfg.CategoryHandler.List)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:slug", cfg.ProductHandler.Detail)
		api.GET("/news", cfg.NewsHandler.List)
		api.GET("/news/:slug", cfg.NewsHandler.Detail)
		api.GET("/reviews/product/:productID", cfg.ReviewHandler.ListForProduct)
		api.POST("/vouchers/validate", cfg.VoucherHandler.Validate)
	}

	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/logout", cfg.AuthHandler.Logout)
		protected.GET("/sse/stream", cfg.SSEHandler.Stream)

		sessions := protected.Group("/customize/sessions")
		{
			sessions.POST("", cfg.CustomizeHandler.Open)
			sessions.GET("/:id", cfg.CustomizeHandler.Get)
			sessions.DELETE("/:id", cfg.CustomizeHandler.Close)
			sessions.POST("/:id/template", cfg.CustomizeHandler.SelectTemplate)
			sessions.POST("/:id/color", cfg.CustomizeHandler.SetColor)
			sessions.POST("/:id/accessories", cfg.CustomizeHandler.AddAccessory)
			sessions.DELETE("/:id/accessories/:accessoryKey", cfg.CustomizeHandler.RemoveAccessory)
			sessions.PUT("/:id/engraving", cfg.CustomizeHandler.SetEngraving)
			sessions.DELETE("/:id/engraving", cfg.CustomizeHandler.ClearEngraving)
			sessions.POST("/:id/reset", cfg.CustomizeHandler.Reset)
			sessions.GET("/:id/quote", cfg.CustomizeHandler.Quote)
			sessions.GET("/:id/render", cfg.CustomizeHandler.Render)
		}

		protected.GET("/cart", cfg.CartHandler.Get)
		protected.POST("/cart/design", cfg.CartHandler.AddDesign)
		protected.POST("/cart/items", cfg.CartHandler.AddProduct)
		protected.PATCH("/cart/items/:id", cfg.CartHandler.UpdateQuantity)
		protected.DELETE("/cart/items/:id", cfg.CartHandler.Remove)
		protected.DELETE("/cart", cfg.CartHandler.Clear)

		protected.POST("/designs", cfg.SavedDesignHandler.Save)
		protected.GET("/designs", cfg.SavedDesignHandler.List)
		protected.POST("/designs/:id/open", cfg.SavedDesignHandler.Open)
		protected.DELETE("/designs/:id", cfg.SavedDesignHandler.Delete)

		protected.POST("/orders/checkout", cfg.OrderHandler.Checkout)
		protected.GET("/orders", cfg.OrderHandler.ListMine)
		protected.GET("/orders/:id", cfg.OrderHandler.GetMine)

		protected.POST("/reviews", cfg.ReviewHandler.Create)
		protected.DELETE("/reviews/:id", cfg.ReviewHandler.Delete)
	}

	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/categories", cfg.CategoryHandler.Create)
		admin.PUT("/categories/:id", cfg.CategoryHandler.Update)
		admin.DELETE("/categories/:id", cfg.CategoryHandler.Delete)

		admin.POST("/products", cfg.ProductHandler.Create)
		admin.PUT("/products/:id", cfg.ProductHandler.Update)
		admin.DELETE("/products/:id", cfg.ProductHandler.Delete)

		admin.POST("/templates", cfg.ProductHandler.CreateTemplate)
		admin.PUT("/templates/:id", cfg.ProductHandler.UpdateTemplate)
		admin.DELETE("/templates/:id", cfg.ProductHandler.DeleteTemplate)

		admin.POST("/accessories", cfg.ProductHandler.CreateAccessory)
		admin.PUT("/accessories/:id", cfg.ProductHandler.UpdateAccessory)
		admin.DELETE("/accessories/:id", cfg.ProductHandler.DeleteAccessory)

		admin.POST("/news", cfg.NewsHandler.Create)
		admin.PUT("/news/:id", cfg.NewsHandler.Update)
		admin.DELETE("/news/:id", cfg.NewsHandler.Delete)

		admin.GET("/vouchers", cfg.VoucherHandler.List)
		admin.POST("/vouchers", cfg.VoucherHandler.Create)
		admin.PUT("/vouchers/:id", cfg.VoucherHandler.Update)
		admin.DELETE("/vouchers/:id", cfg.VoucherHandler.Delete)

		admin.GET("/orders", cfg.OrderHandler.ListAll)
		admin.PATCH("/orders/:id/status", cfg.OrderHandler.UpdateStatus)

		if cfg.UploadHandler != nil {
			admin.POST("/uploads", cfg.UploadHandler.Upload)
		}
	}

	return router
}
