package notification

import (
	"github.com/labstack/echo/v4"

	"vendorhub/core/database"
	"vendorhub/modules/notification/controller"
	"vendorhub/modules/notification/repository"
	"vendorhub/modules/notification/router"
	"vendorhub/modules/notification/service"
)

func Init(e *echo.Echo, db database.IDatabase) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(repo)
	notificationController := controller.NewNotificationController(notificationService)
	router.NewNotificationRouter(notificationController).Setup(e)
	return notificationService
}
