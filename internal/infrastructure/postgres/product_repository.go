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

// ProductRepository implementación PostgreSQL de repository.ProductRepository.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea el repositorio con un pool o una transacción.
func NewProductRepository(db Querier) repository.ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, sku, name, description, category_id, unit_price,
	current_stock, reorder_level, reorder_quantity, unit_of_measure, location,
	is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.UnitPrice,
		&p.CurrentStock, &p.ReorderLevel, &p.ReorderQuantity, &p.UnitOfMeasure,
		&p.Location, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Create inserta el producto. SKU duplicado -> domain.ErrDuplicate.
func (r *ProductRepository) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, category_id, unit_price,
			current_stock, reorder_level, reorder_quantity, unit_of_measure,
			location, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.CategoryID, product.UnitPrice, product.CurrentStock,
		product.ReorderLevel, product.ReorderQuantity, product.UnitOfMeasure,
		product.Location, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// GetByID busca un producto por su ID; nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRow(context.Background(), query, id))
}

// GetBySKU busca un producto por su SKU; nil si no existe.
func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return scanProduct(r.db.QueryRow(context.Background(), query, sku))
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
func (r *ProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.db.QueryRow(context.Background(), query, id))
}

// Update persiste los campos editables del producto (nunca current_stock).
func (r *ProductRepository) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, unit_price = $5,
			reorder_level = $6, reorder_quantity = $7, unit_of_measure = $8,
			location = $9, is_active = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.UnitPrice, product.ReorderLevel, product.ReorderQuantity,
		product.UnitOfMeasure, product.Location, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija current_stock; solo lo usa el libro de stock.
func (r *ProductRepository) UpdateStock(productID string, stock int) error {
	query := `UPDATE products SET current_stock = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, productID, stock)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos filtrando por texto y estado de actividad.
func (r *ProductRepository) List(search, status string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	argPos := 1

	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+search+"%")
		argPos++
	}
	switch status {
	case "active":
		query += " AND is_active = true"
	case "inactive":
		query += " AND is_active = false"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return collectProducts(rows)
}

// ListLowStock devuelve productos activos en o bajo su punto de reorden.
func (r *ProductRepository) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true AND current_stock <= reorder_level
		ORDER BY current_stock ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar stock bajo: %w", err)
	}
	return collectProducts(rows)
}

// ListOutOfStock devuelve productos activos con stock cero.
func (r *ProductRepository) ListOutOfStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true AND current_stock = 0
		ORDER BY name`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar agotados: %w", err)
	}
	return collectProducts(rows)
}

// Deactivate apaga el producto (borrado lógico).
func (r *ProductRepository) Deactivate(id string) error {
	query := `UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
