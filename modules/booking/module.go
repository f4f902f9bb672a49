package booking

import (
	"github.com/labstack/echo/v4"

	"vendorhub/core/database"
	availService "vendorhub/modules/availability/service"
	"vendorhub/modules/booking/controller"
	"vendorhub/modules/booking/repository"
	"vendorhub/modules/booking/router"
	"vendorhub/modules/booking/service"
	notifService "vendorhub/modules/notification/service"
)

func Init(e *echo.Echo, db database.IDatabase, availability availService.AvailabilityService, notifSvc *notifService.NotificationService) service.BookingService {
	repo := repository.NewBookingRepository(db)
	bookingService := service.NewBookingService(repo, availability, notifSvc)
	bookingController := controller.NewBookingController(bookingService)
	router.NewBookingRouter(bookingController).Setup(e)
	return bookingService
}
