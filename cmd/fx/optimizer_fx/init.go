package optimizer_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gujtrip/internal/services"
	"gujtrip/pkg/inflight"
)

var Module = fx.Provide(
	provideRouteCache, provideOptimizer, inflight.NewRegistry)

func provideRouteCache(rdb *redis.Client, logger *zap.Logger) services.RouteCache {
	return services.NewRedisRouteCache(rdb, logger)
}

func provideOptimizer(cache services.RouteCache, logger *zap.Logger) services.RouteOptimizerService {
	return services.NewOptimizerClient(cache, logger)
}
