package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlust/cmd/fx/account_fx"
	"wanderlust/cmd/fx/db_fx"
	"wanderlust/cmd/fx/export_fx"
	"wanderlust/cmd/fx/itinerary_fx"
	"wanderlust/cmd/fx/trip_fx"
	"wanderlust/internal/api/controllers"
	"wanderlust/internal/config"
	"wanderlust/internal/infra"
	"wanderlust/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		export_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Server.Port)
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	exportController *controllers.ExportController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, exportController, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	exportController *controllers.ExportController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.GET("/user", middleware.JWTAuthMiddleware(), accountController.CurrentUser)

	itinerary := api.Group("/itinerary")
	itinerary.POST("/generate", itineraryController.Generate)
	itinerary.POST("/export/csv", exportController.ExportCSV)
	itinerary.POST("/export/maps-url", exportController.MapsURL)
	itinerary.POST("/export/summary", exportController.Summary)

	saved := api.Group("/itinerary", middleware.JWTAuthMiddleware())
	saved.POST("/save", tripController.Save)
	saved.GET("/saved", tripController.List)
	saved.GET("/saved/:id", tripController.Get)
	saved.DELETE("/saved/:id", tripController.Delete)
}
