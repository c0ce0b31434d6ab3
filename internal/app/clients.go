package app

import (
	redisclient "github.com/yungbote/charmworks-backend/internal/clients/redis"
	"github.com/yungbote/charmworks-backend/internal/logger"
)

type Clients struct {
	CatalogCache redisclient.CatalogCache
}

// wireClients initializes optional infrastructure clients. A missing redis is
// downgraded to a warning; the catalog service reads through to postgres.
func wireClients(log *logger.Logger) Clients {
	cache, err := redisclient.NewCatalogCache(log)
	if err != nil {
		log.Warn("Catalog cache unavailable, serving registries from postgres", "error", err)
		cache = nil
	}
	return Clients{CatalogCache: cache}
}
