package repositories

import (
	"context"

	"gorm.io/gorm"

	"gujtrip/internal/models/db_models"
)

type PlaceRepository interface {
	ListPlacesByCity(ctx context.Context, city string) ([]db_models.Place, error)
	ListHotelsByCity(ctx context.Context, city string) ([]db_models.Hotel, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) ListPlacesByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("name asc").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListHotelsByCity(ctx context.Context, city string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("rating desc").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
