package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"gujtrip/internal/models/request_models"
	"gujtrip/internal/models/response_models"
	"gujtrip/internal/repositories"
	"gujtrip/pkg/inflight"
	"gujtrip/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetPlanItinerary(ctx context.Context, planKey string) (*response_models.ItineraryResponse, error)
	SearchRoute(ctx context.Context, callerKey string, req request_models.SearchRouteRequest) (*response_models.RouteResponse, error)
}

type ItineraryService struct {
	planRepo  repositories.PlanRepository
	optimizer RouteOptimizerService
	inflight  *inflight.Registry
	logger    *zap.Logger
}

func NewItineraryService(
	planRepo repositories.PlanRepository,
	optimizer RouteOptimizerService,
	registry *inflight.Registry,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		planRepo:  planRepo,
		optimizer: optimizer,
		inflight:  registry,
		logger:    logger,
	}
}

// GetPlanItinerary runs the whole plan flow: read the stored plan, shape its
// places into optimizer waypoints, call the optimizer, gate the result
// against the trip window, and render the itinerary. The plan itself is
// never written back.
func (s *ItineraryService) GetPlanItinerary(ctx context.Context, planKey string) (*response_models.ItineraryResponse, error) {
	plan, err := s.planRepo.GetByKey(ctx, planKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	window, err := tripWindowFromPlan(plan.StartDate, plan.EndDate)
	if err != nil {
		return nil, err
	}

	var raw []request_models.RawPlace
	if len(plan.Places) > 0 {
		if err := json.Unmarshal(plan.Places, &raw); err != nil {
			return nil, fmt.Errorf("%w: plan places document: %v", utils.ErrInvalidInput, err)
		}
	}

	waypoints := BuildWaypoints(raw, DefaultVisitMinutes)
	optimizeReq, err := BuildRequest(waypoints, DefaultOrigin)
	if err != nil {
		return nil, err
	}

	route, err := s.callOptimizer(ctx, planKey, optimizeReq)
	if err != nil {
		return nil, err
	}

	available := AvailableMinutes(window)
	if result := CheckFeasible(route, available); !result.Feasible {
		s.logger.Info("itinerary infeasible",
			zap.String("plan", planKey),
			zap.Float64("required_minutes", result.RequiredMinutes),
			zap.Int("available_minutes", available),
		)
		return nil, &InfeasibleItineraryError{Result: result}
	}

	return &response_models.ItineraryResponse{
		City:             plan.City,
		StartDate:        plan.StartDate,
		EndDate:          plan.EndDate,
		AvailableMinutes: available,
		RouteResponse:    RenderRoute(route, visitMinutesByName(waypoints)),
	}, nil
}

// SearchRoute is the point-to-point flow: the caller supplies their own
// origin, and no feasibility gate applies because no trip window is
// declared. Missing origin or destination coordinates are refused before
// the network call.
func (s *ItineraryService) SearchRoute(ctx context.Context, callerKey string, req request_models.SearchRouteRequest) (*response_models.RouteResponse, error) {
	waypoints := BuildWaypoints(req.Places, PlanFormVisitMinutes)
	for _, wp := range waypoints {
		if wp.Latitude == 0 && wp.Longitude == 0 {
			return nil, utils.ErrMissingCoordinates
		}
	}

	origin := DefaultOrigin
	if req.From != nil {
		origin = Waypoint{
			Name:      req.From.Name,
			Latitude:  coerceCoordinate(req.From.Latitude),
			Longitude: coerceCoordinate(req.From.Longitude),
			Duration:  0,
		}
		if origin.Latitude == 0 && origin.Longitude == 0 {
			return nil, utils.ErrMissingCoordinates
		}
	}

	optimizeReq, err := BuildRequest(waypoints, origin)
	if err != nil {
		return nil, err
	}

	route, err := s.callOptimizer(ctx, "search:"+callerKey, optimizeReq)
	if err != nil {
		return nil, err
	}

	resp := RenderRoute(route, visitMinutesByName(waypoints))
	return &resp, nil
}

// callOptimizer routes every upstream call through the in-flight registry so
// a user retry cancels the previous call for the same key instead of racing
// it.
func (s *ItineraryService) callOptimizer(ctx context.Context, key string, req OptimizeRouteRequest) (*OptimizedRoute, error) {
	callCtx, done := s.inflight.Begin(ctx, key)
	defer done()

	route, err := s.optimizer.OptimizeRoute(callCtx, req)
	if err != nil {
		if callCtx.Err() == context.Canceled && ctx.Err() == nil {
			// Replaced by a newer request for the same key; report it as a
			// retryable upstream condition rather than rendering anything.
			return nil, utils.ErrOptimizerUnreachable
		}
		return nil, err
	}
	return route, nil
}

func tripWindowFromPlan(startDate, endDate string) (TripWindow, error) {
	start, ok := utils.ParsePlanDate(startDate)
	if !ok {
		return TripWindow{}, fmt.Errorf("%w: start date %q", utils.ErrInvalidInput, startDate)
	}
	end, ok := utils.ParsePlanDate(endDate)
	if !ok {
		return TripWindow{}, fmt.Errorf("%w: end date %q", utils.ErrInvalidInput, endDate)
	}
	if end.Before(start) {
		return TripWindow{}, utils.ErrInvalidTripWindow
	}
	return TripWindow{Start: start, End: end}, nil
}

func visitMinutesByName(waypoints []Waypoint) map[string]int {
	out := make(map[string]int, len(waypoints))
	for _, wp := range waypoints {
		out[wp.Name] = wp.Duration
	}
	return out
}
