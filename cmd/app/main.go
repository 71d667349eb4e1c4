package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gujtrip/cmd/fx/controllers_fx"
	"gujtrip/cmd/fx/infra_fx"
	"gujtrip/cmd/fx/itinerary_fx"
	"gujtrip/cmd/fx/optimizer_fx"
	"gujtrip/cmd/fx/place_fx"
	"gujtrip/cmd/fx/plan_fx"
	"gujtrip/internal/api/controllers"
	"gujtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		infra_fx.Module,
		plan_fx.Module,
		place_fx.Module,
		optimizer_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	planController *controllers.PlanController,
	placeController *controllers.PlaceController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, planController, placeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	planController *controllers.PlanController,
	placeController *controllers.PlaceController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	plansGroup := r.Group("/plans")
	plansGroup.Use(middleware.JWTAuthMiddleware())
	plansGroup.GET("", planController.GetMyPlan)
	plansGroup.GET("/itinerary", itineraryController.GetPlanItinerary)

	routesGroup := r.Group("/routes")
	routesGroup.POST("/search", itineraryController.SearchRoute)

	placesGroup := r.Group("/places")
	placesGroup.GET("/:city", placeController.GetPlacesByCity)

	hotelsGroup := r.Group("/hotels")
	hotelsGroup.GET("/:city", placeController.GetHotelsByCity)
}
