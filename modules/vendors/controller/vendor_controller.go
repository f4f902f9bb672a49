package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/core/controller"
	"vendorhub/core/errors"
	"vendorhub/core/params"
	"vendorhub/modules/vendors/dto"
	"vendorhub/modules/vendors/service"
)

type VendorController struct {
	controller.BaseController
	vendorService service.VendorService
}

func NewVendorController(vendorService service.VendorService) *VendorController {
	return &VendorController{
		BaseController: controller.NewBaseController(),
		vendorService:  vendorService,
	}
}

func (ctrl *VendorController) Create(c echo.Context) error {
	var req dto.CreateVendorRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	vendor, appErr := ctrl.vendorService.Create(c.Request().Context(), &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, vendor, "vendor created")
}

func (ctrl *VendorController) GetByID(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	vendor, appErr := ctrl.vendorService.GetByID(c.Request().Context(), vendorID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, vendor, "")
}

func (ctrl *VendorController) GetBySlug(c echo.Context) error {
	vendor, appErr := ctrl.vendorService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, vendor, "")
}

func (ctrl *VendorController) Update(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	var req dto.UpdateVendorRequest
	if err := c.Bind(&req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	vendor, appErr := ctrl.vendorService.Update(c.Request().Context(), vendorID, &req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, vendor, "vendor updated")
}

func (ctrl *VendorController) List(c echo.Context) error {
	queryParams := params.FromEcho(c)
	vendors, appErr := ctrl.vendorService.List(c.Request().Context(), c.QueryParam("category"), queryParams)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, vendors, "")
}

func (ctrl *VendorController) UploadPortfolioImage(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "invalid vendor id")
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "image file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "could not read image file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, appErr := ctrl.vendorService.UploadPortfolioImage(
		c.Request().Context(), vendorID, fileHeader.Filename, contentType, file,
	)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, result, "image uploaded")
}
