package place_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gujtrip/internal/repositories"
	"gujtrip/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}
