package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gujtrip/internal/models/request_models"
	"gujtrip/internal/models/response_models"
	"gujtrip/internal/repositories"
	"gujtrip/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlanByKey(ctx context.Context, planKey string) (*response_models.PlanResponse, error)
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func (p *PlanService) GetPlanByKey(ctx context.Context, planKey string) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetByKey(ctx, planKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	var places []request_models.RawPlace
	if len(plan.Places) > 0 {
		if err := json.Unmarshal(plan.Places, &places); err != nil {
			return nil, fmt.Errorf("%w: plan places document: %v", utils.ErrInvalidInput, err)
		}
	}

	return &response_models.PlanResponse{
		City:      plan.City,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		Status:    plan.Status,
		Places:    places,
	}, nil
}
