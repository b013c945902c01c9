package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfsolarte/inventario-ventas/internal/application/auth"
	"github.com/jfsolarte/inventario-ventas/internal/application/inventory"
	"github.com/jfsolarte/inventario-ventas/internal/application/reports"
	"github.com/jfsolarte/inventario-ventas/internal/application/sales"
	"github.com/jfsolarte/inventario-ventas/internal/application/usecase"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
)

// Permisos puntuales. Tener el permiso O pertenecer al grupo del área
// habilita la acción.
const (
	PermInventoryManage = "inventory.manage"
	PermSalesManage     = "sales.manage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AdjustStock      *inventory.AdjustStockUseCase
	CustomerUC       *sales.CustomerUseCase
	CreateSale       *sales.CreateSaleUseCase
	DeleteSale       *sales.DeleteSaleUseCase
	SalePDF          *sales.PDFUseCase
	ReportsUC        *reports.UseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	bodega := RequirePermission(PermInventoryManage, entity.GroupBodega)
	vendedor := RequirePermission(PermSalesManage, entity.GroupVendedor)

	// Products e inventario (protegido; mutaciones solo bodega)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.RegisterMovement, deps.AdjustStock)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", bodega, productHandler.Create)
	products.Put("/:id", bodega, productHandler.Update)
	products.Delete("/:id", bodega, productHandler.Delete)
	products.Get("/:id/movements", productHandler.ListMovements)
	products.Post("/:id/movements", bodega, productHandler.RegisterMovement)
	products.Post("/:id/adjust", bodega, productHandler.AdjustStock)

	// Customers (protegido; mutaciones solo ventas)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", vendedor, customerHandler.Create)
	customers.Put("/:id", vendedor, customerHandler.Update)
	customers.Delete("/:id", vendedor, customerHandler.Delete)

	// Sales (protegido; mutaciones solo ventas)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.DeleteSale, deps.SalePDF)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)
	salesGroup.Post("/", vendedor, saleHandler.Create)
	salesGroup.Delete("/:id", vendedor, saleHandler.Delete)

	// Reports y dashboard (protegido, solo lectura)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/statistics", reportHandler.Statistics)
	reportsGroup.Get("/sales", reportHandler.FilteredSales)
	protected.Get("/dashboard", reportHandler.Dashboard)
}
