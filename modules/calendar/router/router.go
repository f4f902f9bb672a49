package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/calendar/controller"
)

type CalendarRouter struct {
	Controller *controller.CalendarController
}

func NewCalendarRouter(ctrl *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{Controller: ctrl}
}

func (r *CalendarRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	cal := v1.Group("/vendors/:vendorId/calendar")
	cal.POST("/feed", r.Controller.ConnectFeed)
	cal.DELETE("/feed", r.Controller.DisconnectFeed)
	cal.GET("/feed", r.Controller.FeedStatus)
	cal.POST("/refresh", r.Controller.Refresh)
	cal.GET("/availability", r.Controller.AvailabilityView)
	cal.GET("/privacy", r.Controller.GetPrivacySettings)
	cal.PUT("/privacy", r.Controller.UpdatePrivacySettings)
}
