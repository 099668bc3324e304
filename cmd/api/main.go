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
	"github.com/tu-usuario/erp-procurement/internal/application/notification"
	"github.com/tu-usuario/erp-procurement/internal/application/procurement"
	"github.com/tu-usuario/erp-procurement/internal/application/report"
	"github.com/tu-usuario/erp-procurement/internal/application/stock"
	"github.com/tu-usuario/erp-procurement/internal/application/supplier"
	"github.com/tu-usuario/erp-procurement/internal/application/usecase"
	"github.com/tu-usuario/erp-procurement/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/erp-procurement/internal/interfaces/http"
	"github.com/tu-usuario/erp-procurement/pkg/config"
	"github.com/tu-usuario/erp-procurement/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewProcurementOrderRepository(pool)
	stockTxRepo := postgres.NewStockTransactionRepository(pool)
	parityRepo := postgres.NewStockParityRepository(pool)
	evalRepo := postgres.NewSupplierEvaluationRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dispatcher := notification.NewDispatcher(
		notifRepo, productRepo, supplierRepo, log, cfg.Stock.DedupeLowStockAlerts,
	)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, stockTxRepo, productRepo, cfg.Stock.AdjustmentMode)
	monitoringUC := stock.NewMonitoringUseCase(productRepo)
	parityUC := stock.NewParityUseCase(parityRepo, productRepo)
	orderUC := procurement.NewOrderUseCase(txRunner, orderRepo, supplierRepo, productRepo, dispatcher)
	evaluationUC := supplier.NewEvaluationUseCase(txRunner, supplierRepo, evalRepo, orderRepo)
	reportUC := report.NewReportUseCase(reportRepo, orderRepo, supplierRepo)

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
		Title:    "ERP Procurement API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		SupplierUC:   supplierUC,
		CategoryUC:   categoryUC,
		StockLedger:  ledgerUC,
		Monitoring:   monitoringUC,
		Parity:       parityUC,
		OrderUC:      orderUC,
		EvaluationUC: evaluationUC,
		Dispatcher:   dispatcher,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
