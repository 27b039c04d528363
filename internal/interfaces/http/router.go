package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ReportUC   *usecase.ReportUseCase
	DB         Pinger
	Logger     *logger.Logger
	AppName    string
	Version    string
}

// Router registra las rutas de la API. Todas son GET y de solo lectura.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	userHandler := NewUserHandler(deps.UserUC, log)
	productHandler := NewProductHandler(deps.ProductUC, log)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, log)

	// Health
	health := NewHealthHandler(deps.AppName, deps.Version, deps.DB, log)
	app.Get("/health", health.Live)
	app.Get("/health/db", health.DB)

	// Listados y detalle por id
	app.Get("/users", userHandler.List)
	app.Get("/user/:id", userHandler.GetByID)
	app.Get("/products", productHandler.List)
	app.Get("/products/:id", productHandler.GetByID)
	app.Get("/categories", categoryHandler.List)
	app.Get("/suppliers", supplierHandler.List)

	// Búsquedas y joins
	api := app.Group("/api")
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.SearchByPrice)
	products.Get("/find", productHandler.FindByName)
	products.Get("/details", productHandler.Details)
	api.Get("/suppliers/products", supplierHandler.ListWithProducts)

	// Reportes
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC, log)
		api.Get("/reports/products/details.pdf", reportHandler.ProductDetailsPDF)
	}
}
