package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jugueteria-api/internal/application/analytics"
	"github.com/jhoicas/Jugueteria-api/internal/application/sales"
	"github.com/jhoicas/Jugueteria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SaleUC      *sales.SaleUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API. No hay autenticación: el dashboard es
// de uso interno para el rol de administrador de la tienda.
func Router(app *fiber.App, deps RouterDeps) {
	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	salesGroup := app.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Register)

	// Dashboard
	dashboard := app.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/sales-by-month", dashboardHandler.GetMonthlySales)
}
