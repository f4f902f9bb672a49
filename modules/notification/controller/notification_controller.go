package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/core/params"
	"vendorhub/modules/notification/dto"
	"vendorhub/modules/notification/service"
)

type NotificationController struct {
	controller.BaseController
	notificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		notificationService: notificationService,
	}
}

func (ctrl *NotificationController) GetMyNotifications(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	result, err := ctrl.notificationService.GetMyNotifications(c.Request().Context(), userID, params.FromEcho(c))
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, result, "")
}

func (ctrl *NotificationController) MarkAsRead(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	var req dto.MarkAsReadRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctrl.notificationService.MarkAsRead(c.Request().Context(), userID, req.IDs); err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, nil, "notifications marked as read")
}

func (ctrl *NotificationController) MarkAllAsRead(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	if err := ctrl.notificationService.MarkAllAsRead(c.Request().Context(), userID); err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, nil, "all notifications marked as read")
}

func (ctrl *NotificationController) CountUnread(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid user id")
	}
	count, err := ctrl.notificationService.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, dto.UnreadCountResponse{Count: count}, "")
}
