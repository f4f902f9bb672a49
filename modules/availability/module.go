package availability

import (
	"github.com/labstack/echo/v4"

	"vendorhub/core/database"
	"vendorhub/modules/availability/controller"
	"vendorhub/modules/availability/repository"
	"vendorhub/modules/availability/router"
	"vendorhub/modules/availability/service"
)

func Init(e *echo.Echo, db database.IDatabase) service.AvailabilityService {
	repo := repository.NewAvailabilityRepository(db)
	availabilityService := service.NewAvailabilityService(repo)
	availabilityController := controller.NewAvailabilityController(availabilityService)
	router.NewAvailabilityRouter(availabilityController).Setup(e)
	return availabilityService
}
