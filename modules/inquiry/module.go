package inquiry

import (
	"github.com/labstack/echo/v4"

	"vendorhub/core/database"
	bookingService "vendorhub/modules/booking/service"
	"vendorhub/modules/inquiry/controller"
	"vendorhub/modules/inquiry/repository"
	"vendorhub/modules/inquiry/router"
	"vendorhub/modules/inquiry/service"
	notifService "vendorhub/modules/notification/service"
)

func Init(e *echo.Echo, db database.IDatabase, bookingSvc bookingService.BookingService, notifSvc *notifService.NotificationService) {
	repo := repository.NewInquiryRepository(db)
	inquiryService := service.NewInquiryService(repo, bookingSvc, notifSvc)
	inquiryController := controller.NewInquiryController(inquiryService)
	router.NewInquiryRouter(inquiryController).Setup(e)
}
