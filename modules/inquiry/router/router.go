package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/inquiry/controller"
)

type InquiryRouter struct {
	Controller *controller.InquiryController
}

func NewInquiryRouter(ctrl *controller.InquiryController) *InquiryRouter {
	return &InquiryRouter{Controller: ctrl}
}

func (r *InquiryRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/inquiries", r.Controller.Create)
	v1.PUT("/inquiries/:id/status", r.Controller.UpdateStatus)
	v1.GET("/vendors/:vendorId/inquiries", r.Controller.ListByVendor)
}
