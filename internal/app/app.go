package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/charmworks-backend/internal/db"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/observability"
	"github.com/yungbote/charmworks-backend/internal/sse"
)

type App struct {
	Log      *logger.Logger
	Config   Config
	Postgres *db.PostgresService
	Hub      *sse.SSEHub
	Repos    Repos
	Clients  Clients
	Services Services
	Handlers Handlers
	Router   *gin.Engine

	otelShutdown func(context.Context) error
	stopSweeper  chan struct{}
}

func New(log *logger.Logger) (*App, error) {
	cfg := LoadConfig(log)

	postgres, err := db.NewPostgresService(log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := postgres.AutoMigrateAll(); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	hub := sse.NewSSEHub(log)
	clients := wireClients(log)
	repos := wireRepos(postgres.DB(), log)
	services := wireServices(postgres.DB(), log, cfg, repos, clients, hub)
	handlers := wireHandlers(log, services, hub)
	middleware := wireMiddleware(log, services)
	router := wireRouter(cfg, handlers, middleware)

	return &App{
		Log:         log,
		Config:      cfg,
		Postgres:    postgres,
		Hub:         hub,
		Repos:       repos,
		Clients:     clients,
		Services:    services,
		Handlers:    handlers,
		Router:      router,
		stopSweeper: make(chan struct{}),
	}, nil
}

// Start launches background workers: trace export and the customization
// session sweeper.
func (a *App) Start(ctx context.Context) {
	a.otelShutdown = observability.InitOTel(ctx, a.Log, observability.OtelConfig{
		ServiceName: "charmworks",
		Environment: a.Config.Environment,
		Version:     a.Config.Version,
	})

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := a.Services.Customize.Sweep(a.Config.SessionMaxIdle); n > 0 {
					a.Log.Info("Swept idle customization sessions", "count", n)
				}
			case <-a.stopSweeper:
				return
			}
		}
	}()
}

func (a *App) Run(addr string) error {
	a.Log.Info("Starting HTTP server", "addr", addr)
	return a.Router.Run(addr)
}

func (a *App) Close() {
	close(a.stopSweeper)
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("Failed to shut down otel exporter", "error", err)
		}
	}
	if a.Clients.CatalogCache != nil {
		if err := a.Clients.CatalogCache.Close(); err != nil {
			a.Log.Warn("Failed to close catalog cache", "error", err)
		}
	}
}
