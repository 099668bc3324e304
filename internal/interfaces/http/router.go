package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-procurement/internal/application/notification"
	"github.com/tu-usuario/erp-procurement/internal/application/procurement"
	"github.com/tu-usuario/erp-procurement/internal/application/report"
	"github.com/tu-usuario/erp-procurement/internal/application/stock"
	"github.com/tu-usuario/erp-procurement/internal/application/supplier"
	"github.com/tu-usuario/erp-procurement/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	SupplierUC   *usecase.SupplierUseCase
	CategoryUC   *usecase.CategoryUseCase
	StockLedger  *stock.LedgerUseCase
	Monitoring   *stock.MonitoringUseCase
	Parity       *stock.ParityUseCase
	OrderUC      *procurement.OrderUseCase
	EvaluationUC *supplier.EvaluationUseCase
	Dispatcher   *notification.Dispatcher
	ReportUC     *report.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Stock: movimientos, monitoreo y discrepancias (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockLedger, deps.Monitoring, deps.Parity)
	stockGroup.Post("/transactions", stockHandler.ApplyTransaction)
	stockGroup.Get("/transactions", stockHandler.ListTransactions)
	stockGroup.Get("/low", stockHandler.LowStock)
	stockGroup.Get("/out", stockHandler.OutOfStock)
	stockGroup.Get("/reorder-suggestions", stockHandler.ReorderSuggestions)
	stockGroup.Post("/parities", stockHandler.ReportParity)
	stockGroup.Get("/parities", stockHandler.ListParities)
	stockGroup.Get("/parities/:id", stockHandler.GetParity)
	stockGroup.Post("/parities/:id/resolve", stockHandler.ResolveParity)

	// Procurement orders (protegido)
	orders := protected.Group("/procurement/orders")
	procurementHandler := NewProcurementHandler(deps.OrderUC)
	orders.Post("/", procurementHandler.Create)
	orders.Get("/", procurementHandler.List)
	orders.Get("/overdue", procurementHandler.ListOverdue)
	orders.Get("/:id", procurementHandler.GetByID)
	orders.Put("/:id", procurementHandler.Update)
	orders.Post("/:id/receive", procurementHandler.Receive)

	// Suppliers y evaluaciones (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.EvaluationUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/top-rated", supplierHandler.TopRated)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Post("/:id/evaluations", supplierHandler.AddEvaluation)
	suppliers.Get("/:id/evaluations", supplierHandler.ListEvaluations)
	suppliers.Get("/:id/performance", supplierHandler.Performance)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Dispatcher)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Post("/:id/read", notificationHandler.MarkAsRead)
	notifications.Post("/check-low-stock", notificationHandler.CheckLowStock)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/procurement-summary", reportHandler.ProcurementSummary)
	reports.Get("/top-suppliers", reportHandler.TopSuppliers)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
