package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/application/stock"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

// StockHandler maneja el libro de stock: movimientos, monitoreo y
// discrepancias de inventario (protegido).
type StockHandler struct {
	ledger     *stock.LedgerUseCase
	monitoring *stock.MonitoringUseCase
	parity     *stock.ParityUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.LedgerUseCase, monitoring *stock.MonitoringUseCase, parity *stock.ParityUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, monitoring: monitoring, parity: parity}
}

// ApplyTransaction godoc
// @Summary      Registrar movimiento de stock
// @Description  Crea el movimiento y ajusta el stock del producto en la misma transacción.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyTransactionRequest  true  "Movimiento"
// @Success      201   {object}  entity.StockTransaction
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/transactions [post]
func (h *StockHandler) ApplyTransaction(c *fiber.Ctx) error {
	var in dto.ApplyTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.ApplyTransaction(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar movimientos de stock
// @Description  Con product_id devuelve el historial del producto; sin él, los movimientos más recientes.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {array}  entity.StockTransaction
// @Router       /api/stock/transactions [get]
func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	var out []*entity.StockTransaction
	var err error
	if productID := c.Query("product_id"); productID != "" {
		out, err = h.ledger.History(productID, limit, offset)
	} else {
		out, err = h.ledger.Recent(limit)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos en o bajo su punto de reorden
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.monitoring.LowStockProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Productos con stock cero
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/stock/out [get]
func (h *StockHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.monitoring.OutOfStockProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReorderSuggestions godoc
// @Summary      Sugerencias de reposición
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/stock/reorder-suggestions [get]
func (h *StockHandler) ReorderSuggestions(c *fiber.Ctx) error {
	out, err := h.monitoring.ReorderSuggestions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportParity godoc
// @Summary      Reportar discrepancia de inventario
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportParityRequest  true  "Conteo físico vs. esperado"
// @Success      201   {object}  entity.StockParity
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/parities [post]
func (h *StockHandler) ReportParity(c *fiber.Ctx) error {
	var in dto.ReportParityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.parity.Report(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ResolveParity godoc
// @Summary      Resolver discrepancia (exactamente una vez)
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID de la discrepancia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/parities/{id}/resolve [post]
func (h *StockHandler) ResolveParity(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.parity.Resolve(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetParity godoc
// @Summary      Obtener discrepancia por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la discrepancia"
// @Success      200  {object}  entity.StockParity
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/parities/{id} [get]
func (h *StockHandler) GetParity(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.parity.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListParities godoc
// @Summary      Listar discrepancias sin resolver
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  entity.StockParity
// @Router       /api/stock/parities [get]
func (h *StockHandler) ListParities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.parity.ListUnresolved(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
