package calendar

import (
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"

	"vendorhub/core/cache"
	"vendorhub/core/database"
	"vendorhub/core/secure"
	auditRepository "vendorhub/modules/audit/repository"
	auditService "vendorhub/modules/audit/service"
	availRepository "vendorhub/modules/availability/repository"
	bookingRepository "vendorhub/modules/booking/repository"
	"vendorhub/modules/calendar/controller"
	"vendorhub/modules/calendar/repository"
	"vendorhub/modules/calendar/router"
	"vendorhub/modules/calendar/service"
	"vendorhub/modules/calendar/tasks"
)

// Init wires the calendar module and returns the background task handler so
// the server can register it with the asynq worker.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, cipher *secure.FeedCipher, asynqClient *asynq.Client, vendorTimezone *time.Location) *tasks.Handler {
	repo := repository.NewCalendarRepository(db)
	availRepo := availRepository.NewAvailabilityRepository(db)
	bookRepo := bookingRepository.NewBookingRepository(db)
	audit := auditService.NewAuditLogger(auditRepository.NewAuditRepository(db))

	parser := service.NewICalParser(vendorTimezone)
	fetcher := service.NewFeedFetcher(parser)
	scheduler := tasks.NewScheduler(asynqClient)

	calendarService := service.NewCalendarService(repo, availRepo, bookRepo, c, cipher, fetcher, audit, scheduler)
	calendarController := controller.NewCalendarController(calendarService)
	router.NewCalendarRouter(calendarController).Setup(e)

	return tasks.NewHandler(calendarService, repo, scheduler)
}
