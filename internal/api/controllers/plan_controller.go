package controllers

import (
	"github.com/gin-gonic/gin"

	"gujtrip/internal/services"
	"gujtrip/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GetMyPlan godoc
// @Summary Get the caller's stored trip plan
// @Tags Plan
// @Produce json
// @Success 200 {object} response_models.PlanResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [get]
func (pc *PlanController) GetMyPlan(c *gin.Context) {
	phone := c.GetString("phone")
	planKey := utils.PlanKeyFromPhone(phone)

	plan, err := pc.planService.GetPlanByKey(c.Request.Context(), planKey)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}
