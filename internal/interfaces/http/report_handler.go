package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-procurement/internal/application/report"
)

// ReportHandler maneja la reportería agregada y el tablero (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProcurementSummary godoc
// @Summary      Resumen de compras
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200   {object}  dto.ProcurementSummaryDTO
// @Router       /api/reports/procurement-summary [get]
func (h *ReportHandler) ProcurementSummary(c *fiber.Ctx) error {
	out, err := h.uc.ProcurementSummary(c.QueryInt("days", 30))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopSuppliers godoc
// @Summary      Proveedores por valor de órdenes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Ventana en días"  default(30)
// @Param        limit  query  int  false  "Cantidad"         default(10)
// @Success      200    {array}  dto.TopSupplierDTO
// @Router       /api/reports/top-suppliers [get]
func (h *ReportHandler) TopSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.TopSuppliers(c.QueryInt("days", 30), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Contadores del tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
