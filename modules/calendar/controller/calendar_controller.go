package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/modules/calendar/dto"
	"vendorhub/modules/calendar/service"
)

type CalendarController struct {
	controller.BaseController
	calendarService service.CalendarService
}

func NewCalendarController(calendarService service.CalendarService) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		calendarService: calendarService,
	}
}

func (ctrl *CalendarController) ConnectFeed(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}

	var req dto.ConnectFeedRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if appErr := ctrl.calendarService.ConnectFeed(c.Request().Context(), vendorID, req.URL); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "calendar connected")
}

func (ctrl *CalendarController) DisconnectFeed(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	if appErr := ctrl.calendarService.DisconnectFeed(c.Request().Context(), vendorID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "calendar disconnected")
}

func (ctrl *CalendarController) FeedStatus(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	status, appErr := ctrl.calendarService.GetFeedStatus(c.Request().Context(), vendorID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, status, "")
}

// Refresh triggers a manual sync (the dashboard's refresh button).
func (ctrl *CalendarController) Refresh(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	events, appErr := ctrl.calendarService.Sync(c.Request().Context(), vendorID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, map[string]any{"event_count": len(events)}, "calendar synced")
}

// AvailabilityView returns the merged per-day statuses for a date range,
// e.g. ?start=2025-06-01&end=2025-06-30 for a month view.
func (ctrl *CalendarController) AvailabilityView(c echo.Context) error {
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

	view, appErr := ctrl.calendarService.GetAvailabilityView(c.Request().Context(), vendorID, start, end)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, view, "")
}

func (ctrl *CalendarController) GetPrivacySettings(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	settings, appErr := ctrl.calendarService.GetPrivacySettings(c.Request().Context(), vendorID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, settings, "")
}

func (ctrl *CalendarController) UpdatePrivacySettings(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	var req dto.UpdatePrivacySettingsRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	settings, appErr := ctrl.calendarService.UpdatePrivacySettings(c.Request().Context(), vendorID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, settings, "privacy settings updated")
}
