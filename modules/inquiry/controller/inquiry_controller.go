package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/core/params"
	"vendorhub/modules/inquiry/dto"
	"vendorhub/modules/inquiry/service"
)

type InquiryController struct {
	controller.BaseController
	inquiryService service.InquiryService
}

func NewInquiryController(inquiryService service.InquiryService) *InquiryController {
	return &InquiryController{
		BaseController: controller.NewBaseController(),
		inquiryService: inquiryService,
	}
}

func (ctrl *InquiryController) Create(c echo.Context) error {
	var req dto.CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	inquiry, appErr := ctrl.inquiryService.Create(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, inquiry, "inquiry created")
}

func (ctrl *InquiryController) UpdateStatus(c echo.Context) error {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid inquiry id")
	}
	var req dto.UpdateInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	inquiry, appErr := ctrl.inquiryService.UpdateStatus(c.Request().Context(), inquiryID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, inquiry, "inquiry updated")
}

func (ctrl *InquiryController) ListByVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	queryParams := params.FromEcho(c)
	inquiries, appErr := ctrl.inquiryService.ListByVendor(c.Request().Context(), vendorID, queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, inquiries, "")
}
