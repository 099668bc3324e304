package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/application/procurement"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

// ProcurementHandler maneja las órdenes de compra (protegido).
type ProcurementHandler struct {
	uc *procurement.OrderUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *procurement.OrderUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         procurement
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden con sus ítems"
// @Success      201   {object}  entity.ProcurementOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/procurement/orders [post]
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID (con ítems)
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  entity.ProcurementOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurement/orders/{id} [get]
func (h *ProcurementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "PENDING | APPROVED | ORDERED | RECEIVED | CANCELLED"
// @Param        search       query  string  false  "Texto a buscar en el número de orden"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  entity.ProcurementOrder
// @Router       /api/procurement/orders [get]
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
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
	var out []*entity.ProcurementOrder
	var err error
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		out, err = h.uc.ListOrdersBySupplier(supplierID, limit, offset)
	} else {
		out, err = h.uc.ListOrders(c.Query("status"), c.Query("search"), limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden (estado, fechas, ítems)
// @Tags         procurement
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.ProcurementOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procurement/orders/{id} [put]
func (h *ProcurementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateOrder(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Marcar orden como recibida
// @Description  Fija el estado RECEIVED, la fecha real de entrega y completa las cantidades recibidas.
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  entity.ProcurementOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurement/orders/{id}/receive [post]
func (h *ProcurementHandler) Receive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ReceiveOrder(c.Context(), id, nil)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOverdue godoc
// @Summary      Órdenes vencidas
// @Description  Órdenes abiertas cuya fecha esperada de entrega ya pasó.
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.ProcurementOrder
// @Router       /api/procurement/orders/overdue [get]
func (h *ProcurementHandler) ListOverdue(c *fiber.Ctx) error {
	out, err := h.uc.ListOverdue()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
