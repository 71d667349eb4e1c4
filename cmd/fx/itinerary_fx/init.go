package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gujtrip/internal/repositories"
	"gujtrip/internal/services"
	"gujtrip/pkg/inflight"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	planRepo repositories.PlanRepository,
	optimizer services.RouteOptimizerService,
	registry *inflight.Registry,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(planRepo, optimizer, registry, logger)
}
