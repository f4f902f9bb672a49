package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/modules/booking/dto"
	"vendorhub/modules/booking/service"
)

type BookingController struct {
	controller.BaseController
	bookingService service.BookingService
}

func NewBookingController(bookingService service.BookingService) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		bookingService: bookingService,
	}
}

func (ctrl *BookingController) ListByVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	bookings, appErr := ctrl.bookingService.ListByVendor(c.Request().Context(), vendorID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, bookings, "")
}

func (ctrl *BookingController) UpdateStatus(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid booking id")
	}
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	booking, appErr := ctrl.bookingService.UpdateStatus(c.Request().Context(), bookingID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, booking, "booking updated")
}

func (ctrl *BookingController) Reschedule(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid booking id")
	}
	var req dto.RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	newDate, err := time.Parse("2006-01-02", req.NewDate)
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid new date, expected YYYY-MM-DD")
	}
	booking, appErr := ctrl.bookingService.Reschedule(c.Request().Context(), bookingID, newDate)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, booking, "booking rescheduled")
}
