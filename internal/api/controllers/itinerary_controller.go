package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gujtrip/internal/models/request_models"
	"gujtrip/internal/models/response_models"
	"gujtrip/internal/services"
	"gujtrip/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetPlanItinerary godoc
// @Summary Get the optimized itinerary for the caller's plan
// @Description Reads the stored trip plan, optimizes the route through the selected places, checks it fits the trip dates, and returns the ordered itinerary with map draw commands
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "Route does not fit the trip window"
// @Failure 502 {object} utils.APIResponse "Optimizer unavailable or returned an error"
// @Security BearerAuth
// @Router /plans/itinerary [get]
func (ic *ItineraryController) GetPlanItinerary(c *gin.Context) {
	phone := c.GetString("phone")
	planKey := utils.PlanKeyFromPhone(phone)

	itinerary, err := ic.itineraryService.GetPlanItinerary(c.Request.Context(), planKey)
	if err != nil {
		var infeasible *services.InfeasibleItineraryError
		if errors.As(err, &infeasible) {
			result := infeasible.Result
			utils.RespondErrorData(c, http.StatusConflict, result.BlockingMessage(), response_models.FeasibilityDetail{
				RequiredMinutes:  result.RequiredMinutes,
				AvailableMinutes: result.AvailableMinutes,
				ShortfallMinutes: result.ShortfallMinutes,
				RequiredDays:     result.RequiredDays,
				RequiredTime:     utils.FormatMinutes(result.RequiredMinutes),
			})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary ready")
}

// SearchRoute godoc
// @Summary Optimize a route from a chosen starting point
// @Description Point-to-point flow: the caller picks a "from" location and destinations; no trip window applies
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SearchRouteRequest true "Origin and destination places"
// @Success 200 {object} response_models.RouteResponse
// @Failure 400 {object} utils.APIResponse
// @Router /routes/search [post]
func (ic *ItineraryController) SearchRoute(c *gin.Context) {
	var req request_models.SearchRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerKey := c.GetString("phone")
	if callerKey == "" {
		callerKey = c.ClientIP()
	}

	route, err := ic.itineraryService.SearchRoute(c.Request.Context(), callerKey, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route optimized successfully")
}
