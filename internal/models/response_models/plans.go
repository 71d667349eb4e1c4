package response_models

import "gujtrip/internal/models/request_models"

type PlanResponse struct {
	City      string                    `json:"city"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Status    string                    `json:"status"`
	Places    []request_models.RawPlace `json:"places"`
}
