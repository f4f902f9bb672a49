package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/notification/controller"
)

type NotificationRouter struct {
	Controller *controller.NotificationController
}

func NewNotificationRouter(ctrl *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{Controller: ctrl}
}

func (r *NotificationRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	notif := v1.Group("/users/:userId/notifications")
	notif.GET("", r.Controller.GetMyNotifications)
	notif.GET("/unread-count", r.Controller.CountUnread)
	notif.PUT("/read", r.Controller.MarkAsRead)
	notif.PUT("/read-all", r.Controller.MarkAllAsRead)
}
