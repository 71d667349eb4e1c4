package controllers_fx

import (
	"go.uber.org/fx"

	"gujtrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewPlaceController))
