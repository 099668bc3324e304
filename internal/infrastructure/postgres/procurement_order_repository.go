package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ProcurementOrderRepository implementación PostgreSQL de órdenes de compra.
// La cabecera y sus ítems se persisten juntos; Update reemplaza los ítems.
type ProcurementOrderRepository struct {
	db Querier
}

// NewProcurementOrderRepository crea el repositorio.
func NewProcurementOrderRepository(db Querier) repository.ProcurementOrderRepository {
	return &ProcurementOrderRepository{db: db}
}

const orderColumns = `id, order_number, supplier_id, status, order_date,
	expected_delivery_date, actual_delivery_date, total_amount, created_by,
	notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.ProcurementOrder, error) {
	var o entity.ProcurementOrder
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.SupplierID, &o.Status, &o.OrderDate,
		&o.ExpectedDeliveryDate, &o.ActualDeliveryDate, &o.TotalAmount,
		&o.CreatedBy, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]*entity.ProcurementOrder, error) {
	defer rows.Close()
	var orders []*entity.ProcurementOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ProcurementOrderRepository) insertItems(ctx context.Context, order *entity.ProcurementOrder) error {
	query := `
		INSERT INTO procurement_order_items (id, order_id, product_id, quantity,
			unit_price, received_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range order.Items {
		_, err := r.db.Exec(ctx, query,
			item.ID, order.ID, item.ProductID, item.Quantity,
			item.UnitPrice, item.ReceivedQuantity,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insertar ítem de orden: %w", err)
		}
	}
	return nil
}

func (r *ProcurementOrderRepository) loadItems(ctx context.Context, order *entity.ProcurementOrder) error {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, received_quantity
		FROM procurement_order_items
		WHERE order_id = $1
		ORDER BY id`
	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("cargar ítems de orden: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.ProcurementOrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.ReceivedQuantity)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, &item)
	}
	return rows.Err()
}

// Create inserta la orden con sus ítems. Número de orden duplicado -> domain.ErrDuplicate.
func (r *ProcurementOrderRepository) Create(order *entity.ProcurementOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO procurement_orders (id, order_number, supplier_id, status,
			order_date, expected_delivery_date, actual_delivery_date,
			total_amount, created_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.OrderNumber, order.SupplierID, order.Status,
		order.OrderDate, order.ExpectedDeliveryDate, order.ActualDeliveryDate,
		order.TotalAmount, order.CreatedBy, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar orden: %w", err)
	}
	return r.insertItems(ctx, order)
}

// GetByID busca una orden con sus ítems; nil si no existe.
func (r *ProcurementOrderRepository) GetByID(id string) (*entity.ProcurementOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM procurement_orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil || order == nil {
		return order, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByOrderNumber busca una orden por su número con sus ítems; nil si no existe.
func (r *ProcurementOrderRepository) GetByOrderNumber(orderNumber string) (*entity.ProcurementOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM procurement_orders WHERE order_number = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderNumber))
	if err != nil || order == nil {
		return order, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update persiste la cabecera y reemplaza los ítems de la orden.
func (r *ProcurementOrderRepository) Update(order *entity.ProcurementOrder) error {
	ctx := context.Background()
	query := `
		UPDATE procurement_orders
		SET supplier_id = $2, status = $3, order_date = $4,
			expected_delivery_date = $5, actual_delivery_date = $6,
			total_amount = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		order.ID, order.SupplierID, order.Status, order.OrderDate,
		order.ExpectedDeliveryDate, order.ActualDeliveryDate,
		order.TotalAmount, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar orden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM procurement_order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("reemplazar ítems de orden: %w", err)
	}
	return r.insertItems(ctx, order)
}

// List devuelve órdenes (sin ítems) filtrando por estado y número de orden.
func (r *ProcurementOrderRepository) List(status, search string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM procurement_orders WHERE 1=1`
	args := []any{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, status)
		argPos++
	}
	if search != "" {
		query += fmt.Sprintf(" AND order_number ILIKE $%d", argPos)
		args = append(args, "%"+search+"%")
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY order_date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	return collectOrders(rows)
}

// ListBySupplier devuelve las órdenes (sin ítems) de un proveedor.
func (r *ProcurementOrderRepository) ListBySupplier(supplierID string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM procurement_orders
		WHERE supplier_id = $1
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes por proveedor: %w", err)
	}
	return collectOrders(rows)
}

// ListOpenWithDeliveryDate devuelve órdenes no terminales con fecha esperada
// de entrega. El cálculo de vencimiento es del dominio, no de SQL.
func (r *ProcurementOrderRepository) ListOpenWithDeliveryDate() ([]*entity.ProcurementOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM procurement_orders
		WHERE status NOT IN ($1, $2) AND expected_delivery_date IS NOT NULL
		ORDER BY expected_delivery_date ASC`
	rows, err := r.db.Query(context.Background(), query,
		entity.OrderStatusReceived, entity.OrderStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes abiertas: %w", err)
	}
	return collectOrders(rows)
}

// SupplierStats agrega los contadores de órdenes de un proveedor en una consulta.
func (r *ProcurementOrderRepository) SupplierStats(supplierID string) (*repository.SupplierOrderStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $2
				AND actual_delivery_date IS NOT NULL
				AND expected_delivery_date IS NOT NULL
				AND actual_delivery_date <= expected_delivery_date)
		FROM procurement_orders
		WHERE supplier_id = $1`
	var stats repository.SupplierOrderStats
	err := r.db.QueryRow(context.Background(), query, supplierID, entity.OrderStatusReceived).
		Scan(&stats.TotalOrders, &stats.CompletedOrders, &stats.OnTimeOrders)
	if err != nil {
		return nil, fmt.Errorf("estadísticas de proveedor: %w", err)
	}
	return &stats, nil
}
