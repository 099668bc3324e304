// Package report compone consultas read-only sobre los demás motores.
// Sin lógica propia: agrupa y suma; las reglas viven en stock, procurement
// y supplier.
package report

import (
	"time"

	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ReportUseCase agrega resúmenes de compras, ranking de proveedores y los
// contadores del tablero.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	orderRepo    repository.ProcurementOrderRepository
	supplierRepo repository.SupplierRepository
}

// NewReportUseCase construye el agregador.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	orderRepo repository.ProcurementOrderRepository,
	supplierRepo repository.SupplierRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
	}
}

// ProcurementSummary resume las órdenes de los últimos N días: valor total,
// cantidad y conteo por estado.
func (uc *ReportUseCase) ProcurementSummary(days int) (*dto.ProcurementSummaryDTO, error) {
	if days <= 0 {
		days = 30
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	summary, err := uc.reportRepo.ProcurementSummary(start)
	if err != nil {
		return nil, err
	}
	return &dto.ProcurementSummaryDTO{
		Days:        days,
		StartDate:   start,
		EndDate:     end,
		TotalValue:  summary.TotalValue,
		TotalOrders: summary.TotalOrders,
		ByStatus:    summary.ByStatus,
	}, nil
}

// TopSuppliers devuelve los proveedores con mayor valor de órdenes en la
// ventana de días indicada.
func (uc *ReportUseCase) TopSuppliers(days, limit int) ([]dto.TopSupplierDTO, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = 10
	}
	since := time.Now().AddDate(0, 0, -days)

	rows, err := uc.reportRepo.TopSuppliersByValue(since, limit)
	if err != nil {
		return nil, err
	}
	top := make([]dto.TopSupplierDTO, 0, len(rows))
	for _, r := range rows {
		top = append(top, dto.TopSupplierDTO{
			SupplierID:      r.SupplierID,
			SupplierName:    r.SupplierName,
			OrderCount:      r.OrderCount,
			TotalOrderValue: r.TotalOrderValue,
		})
	}
	return top, nil
}

// Dashboard arma los contadores del tablero. Las órdenes vencidas se
// calculan en dominio sobre las candidatas abiertas con fecha esperada.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardDTO, error) {
	counts, err := uc.reportRepo.DashboardCounts()
	if err != nil {
		return nil, err
	}
	candidates, err := uc.orderRepo.ListOpenWithDeliveryDate()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	overdue := 0
	for _, o := range candidates {
		if o.IsOverdue(now) {
			overdue++
		}
	}
	return &dto.DashboardDTO{
		TotalProducts:       counts.TotalProducts,
		LowStockProducts:    counts.LowStockProducts,
		OutOfStockProducts:  counts.OutOfStockProducts,
		TotalStockValue:     counts.TotalStockValue,
		PendingOrders:       counts.PendingOrders,
		OverdueOrders:       overdue,
		TotalOrders:         counts.TotalOrders,
		ActiveSuppliers:     counts.ActiveSuppliers,
		UnresolvedParities:  counts.UnresolvedParities,
		UnreadNotifications: counts.UnreadNotifications,
	}, nil
}
