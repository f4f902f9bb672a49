package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/availability/controller"
)

type AvailabilityRouter struct {
	Controller *controller.AvailabilityController
}

func NewAvailabilityRouter(ctrl *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{Controller: ctrl}
}

func (r *AvailabilityRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	avail := v1.Group("/vendors/:vendorId/availability")
	avail.GET("", r.Controller.ListRange)
	avail.PUT("/day", r.Controller.SetDay)
	avail.PUT("/bulk", r.Controller.BulkMark)
}
