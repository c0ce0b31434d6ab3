package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/utils"
)

// CatalogCache keeps serialized registry snapshots so hot product pages don't
// hammer postgres. Misses and redis failures are both treated as a miss; the
// catalog service falls through to the database.
type CatalogCache interface {
	GetRegistry(ctx context.Context, productID uuid.UUID) (*RegistrySnapshot, bool)
	SetRegistry(ctx context.Context, productID uuid.UUID, snap *RegistrySnapshot) error
	Invalidate(ctx context.Context, productID uuid.UUID) error
	Close() error
}

type RegistrySnapshot struct {
	Templates   []engine.Template  `json:"templates"`
	Accessories []engine.Accessory `json:"accessories"`
}

type catalogCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewCatalogCache(log *logger.Logger) (CatalogCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	cacheLog := log.With("client", "RedisCatalogCache")

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttlSeconds := utils.GetEnvAsInt("CATALOG_CACHE_TTL", 300, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &catalogCache{
		log: cacheLog,
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func registryKey(productID uuid.UUID) string {
	return "catalog:registry:" + productID.String()
}

func (c *catalogCache) GetRegistry(ctx context.Context, productID uuid.UUID) (*RegistrySnapshot, bool) {
	raw, err := c.rdb.Get(ctx, registryKey(productID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Catalog cache read failed", "error", err, "product_id", productID)
		}
		return nil, false
	}
	var snap RegistrySnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warn("Catalog cache payload corrupt, ignoring", "error", err, "product_id", productID)
		return nil, false
	}
	return &snap, true
}

func (c *catalogCache) SetRegistry(ctx context.Context, productID uuid.UUID, snap *RegistrySnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal registry snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, registryKey(productID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write registry snapshot: %w", err)
	}
	return nil
}

func (c *catalogCache) Invalidate(ctx context.Context, productID uuid.UUID) error {
	return c.rdb.Del(ctx, registryKey(productID)).Err()
}

func (c *catalogCache) Close() error {
	return c.rdb.Close()
}
