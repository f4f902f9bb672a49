package router

import (
	"github.com/labstack/echo/v4"

	"vendorhub/modules/vendors/controller"
)

type VendorRouter struct {
	Controller *controller.VendorController
}

func NewVendorRouter(ctrl *controller.VendorController) *VendorRouter {
	return &VendorRouter{Controller: ctrl}
}

func (r *VendorRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/vendors", r.Controller.Create)
	v1.GET("/vendors", r.Controller.List)
	v1.GET("/vendors/:vendorId", r.Controller.GetByID)
	v1.GET("/vendors/slug/:slug", r.Controller.GetBySlug)
	v1.PUT("/vendors/:vendorId", r.Controller.Update)
	v1.POST("/vendors/:vendorId/portfolio", r.Controller.UploadPortfolioImage)
}
