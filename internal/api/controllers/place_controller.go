package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gujtrip/internal/services"
	"gujtrip/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{
		placeService: placeService,
	}
}

func (pc *PlaceController) GetPlacesByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	places, err := pc.placeService.ListPlacesByCity(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (pc *PlaceController) GetHotelsByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	hotels, err := pc.placeService.ListHotelsByCity(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}
