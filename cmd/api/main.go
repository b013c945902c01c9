package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jfsolarte/inventario-ventas/internal/application/auth"
	"github.com/jfsolarte/inventario-ventas/internal/application/inventory"
	"github.com/jfsolarte/inventario-ventas/internal/application/reports"
	"github.com/jfsolarte/inventario-ventas/internal/application/sales"
	"github.com/jfsolarte/inventario-ventas/internal/application/usecase"
	infrapdf "github.com/jfsolarte/inventario-ventas/internal/infrastructure/pdf"
	"github.com/jfsolarte/inventario-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/jfsolarte/inventario-ventas/internal/interfaces/http"
	"github.com/jfsolarte/inventario-ventas/pkg/config"
	"github.com/jfsolarte/inventario-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movementRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner)
	customerUC := sales.NewCustomerUseCase(customerRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo, productRepo, saleRepo)
	deleteSaleUC := sales.NewDeleteSaleUseCase(txRunner)
	reportsUC := reports.NewUseCase(reportRepo, productRepo, saleRepo)

	// PDF: comprobante imprimible de la venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	salePDFUC := sales.NewPDFUseCase(saleRepo, customerRepo, productRepo, pdfGenerator, sales.Issuer{
		Name:    cfg.Issuer.Name,
		TaxID:   cfg.Issuer.TaxID,
		Address: cfg.Issuer.Address,
		Phone:   cfg.Issuer.Phone,
		Email:   cfg.Issuer.Email,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		AdjustStock:      adjustStockUC,
		CustomerUC:       customerUC,
		CreateSale:       createSaleUC,
		DeleteSale:       deleteSaleUC,
		SalePDF:          salePDFUC,
		ReportsUC:        reportsUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
