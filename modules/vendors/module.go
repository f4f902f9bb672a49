package vendors

import (
	"github.com/labstack/echo/v4"

	"vendorhub/core/database"
	"vendorhub/core/storage"
	"vendorhub/modules/vendors/controller"
	"vendorhub/modules/vendors/repository"
	"vendorhub/modules/vendors/router"
	"vendorhub/modules/vendors/service"
)

func Init(e *echo.Echo, db database.IDatabase, objectStorage storage.ObjectStorage) service.VendorService {
	repo := repository.NewVendorRepository(db)
	vendorService := service.NewVendorService(repo, objectStorage)
	vendorController := controller.NewVendorController(vendorService)
	router.NewVendorRouter(vendorController).Setup(e)
	return vendorService
}
