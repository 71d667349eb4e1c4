package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RouteCache memoizes optimizer responses. The optimizer recomputes the same
// permutation search for identical inputs, so repeated views of the same
// plan should not pay for a second upstream call.
type RouteCache interface {
	Get(ctx context.Context, key string) (*OptimizedRoute, bool)
	Set(ctx context.Context, key string, route *OptimizedRoute, ttl time.Duration)
}

type redisRouteCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisRouteCache(rdb *redis.Client, logger *zap.Logger) RouteCache {
	return &redisRouteCache{rdb: rdb, logger: logger}
}

// Cache failures are never surfaced: a broken cache degrades to calling the
// optimizer every time.
func (c *redisRouteCache) Get(ctx context.Context, key string) (*OptimizedRoute, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("route cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var route OptimizedRoute
	if err := json.Unmarshal(raw, &route); err != nil {
		c.logger.Warn("route cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &route, true
}

func (c *redisRouteCache) Set(ctx context.Context, key string, route *OptimizedRoute, ttl time.Duration) {
	raw, err := json.Marshal(route)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn("route cache set failed", zap.String("key", key), zap.Error(err))
	}
}
