package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/api/controllers"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, generator utils.GenerationClientInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
