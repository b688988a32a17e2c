package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/models"
)

const (
	cacheKeyList = "catalog:approved"
	cacheTTL     = 30 * time.Second
)

// Cache is a read-through Redis cache for the approved event list. It is
// invalidated by review decisions and organizer mutations, never mutated
// speculatively, so stale entries only ever outlive a change by the TTL.
type Cache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewCache creates a catalog cache.
func NewCache(rdb *redis.Client, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{rdb: rdb, logger: logger}
}

// GetList returns the cached approved list, or ok=false on miss or error.
func (c *Cache) GetList(ctx context.Context) ([]models.Event, bool) {
	raw, err := c.rdb.Get(ctx, cacheKeyList).Bytes()
	if err != nil {
		return nil, false
	}
	var list []models.Event
	if err := json.Unmarshal(raw, &list); err != nil {
		c.logger.Warn("catalog cache decode failed", zap.Error(err))
		return nil, false
	}
	return list, true
}

// SetList stores the approved list with the cache TTL. Failures are logged
// and ignored; the cache is an optimization, not a source of truth.
func (c *Cache) SetList(ctx context.Context, list []models.Event) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKeyList, raw, cacheTTL).Err(); err != nil {
		c.logger.Warn("catalog cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached list.
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, cacheKeyList).Err(); err != nil {
		c.logger.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}
