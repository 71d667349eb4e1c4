package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gujtrip/internal/models/db_models"
)

// PlanRepository is read-only on purpose: plans are written by the plan
// form, this service only consumes them.
type PlanRepository interface {
	GetByKey(ctx context.Context, planKey string) (*db_models.TripPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByKey(ctx context.Context, planKey string) (*db_models.TripPlan, error) {
	var plan db_models.TripPlan
	err := r.db.WithContext(ctx).
		First(&plan, "plan_key = ?", planKey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
