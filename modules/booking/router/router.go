package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/booking/controller"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/vendors/:vendorId/bookings", r.Controller.ListByVendor)
	v1.PUT("/bookings/:id/status", r.Controller.UpdateStatus)
	v1.PUT("/bookings/:id/reschedule", r.Controller.Reschedule)
}
