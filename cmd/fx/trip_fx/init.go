package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlust/internal/api/controllers"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	controllers.NewTripController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
