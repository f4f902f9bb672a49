package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/modules/availability/dto"
	"vendorhub/modules/availability/service"
)

type AvailabilityController struct {
	controller.BaseController
	availabilityService service.AvailabilityService
}

func NewAvailabilityController(availabilityService service.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		availabilityService: availabilityService,
	}
}

func (ctrl *AvailabilityController) SetDay(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	var req dto.SetDayRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid date, expected YYYY-MM-DD")
	}
	if appErr := ctrl.availabilityService.SetDay(c.Request().Context(), vendorID, date, req.IsAvailable); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "availability updated")
}

func (ctrl *AvailabilityController) BulkMark(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	var req dto.BulkMarkRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if appErr := ctrl.availabilityService.BulkMark(c.Request().Context(), vendorID, &req); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "availability updated")
}

func (ctrl *AvailabilityController) ListRange(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	start, err := time.Parse("2006-01-02", c.QueryParam("start"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.QueryParam("end"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid end date, expected YYYY-MM-DD")
	}
	records, appErr := ctrl.availabilityService.ListRange(c.Request().Context(), vendorID, start, end)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, records, "")
}
