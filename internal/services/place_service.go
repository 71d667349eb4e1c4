package services

import (
	"context"

	"gujtrip/internal/models/db_models"
	"gujtrip/internal/models/response_models"
	"gujtrip/internal/repositories"
	"gujtrip/pkg/utils"
)

type PlaceServiceInterface interface {
	ListPlacesByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error)
	ListHotelsByCity(ctx context.Context, city string) ([]response_models.HotelResponse, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
	}
}

func (s *PlaceService) ListPlacesByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error) {
	places, err := s.placeRepo.ListPlacesByCity(ctx, city)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, buildPlaceResponse(place))
	}
	return out, nil
}

func (s *PlaceService) ListHotelsByCity(ctx context.Context, city string) ([]response_models.HotelResponse, error) {
	hotels, err := s.placeRepo.ListHotelsByCity(ctx, city)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, response_models.HotelResponse{
			ID:        hotel.ID.String(),
			Name:      hotel.Name,
			City:      hotel.City,
			Latitude:  hotel.Latitude,
			Longitude: hotel.Longitude,
			Rating:    hotel.Rating,
			PriceText: hotel.PriceText,
			ImageURL:  hotel.ImageURL,
		})
	}
	return out, nil
}

func buildPlaceResponse(place db_models.Place) response_models.PlaceResponse {
	duration := place.Duration
	if duration <= 0 {
		duration = DefaultVisitMinutes
	}
	return response_models.PlaceResponse{
		ID:          place.ID.String(),
		Name:        place.Name,
		City:        place.City,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Duration:    duration,
		Category:    place.Category,
		Description: place.Description,
		ImageURL:    place.ImageURL,
	}
}
