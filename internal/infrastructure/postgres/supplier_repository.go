package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// SupplierRepository implementación PostgreSQL de repository.SupplierRepository.
type SupplierRepository struct {
	db Querier
}

// NewSupplierRepository crea el repositorio.
func NewSupplierRepository(db Querier) repository.SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, name, contact_person, email, phone, address,
	rating, total_orders, on_time_delivery_rate, quality_score, is_active,
	created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.Rating, &s.TotalOrders, &s.OnTimeDeliveryRate, &s.QualityScore,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func collectSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	defer rows.Close()
	var suppliers []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// Create inserta el proveedor.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address,
			rating, total_orders, on_time_delivery_rate, quality_score,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address, supplier.Rating, supplier.TotalOrders,
		supplier.OnTimeDeliveryRate, supplier.QualityScore, supplier.IsActive,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar proveedor: %w", err)
	}
	return nil
}

// GetByID busca un proveedor por su ID; nil si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return scanSupplier(r.db.QueryRow(context.Background(), query, id))
}

// Update persiste los campos editables del proveedor (no el rating derivado).
func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, on_time_delivery_rate = $7, quality_score = $8,
			is_active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address, supplier.OnTimeDeliveryRate,
		supplier.QualityScore, supplier.IsActive, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRating fija el rating derivado; solo lo usa el motor de evaluaciones.
func (r *SupplierRepository) UpdateRating(supplierID string, rating decimal.Decimal) error {
	query := `UPDATE suppliers SET rating = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, supplierID, rating)
	if err != nil {
		return fmt.Errorf("actualizar rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve proveedores filtrando por texto.
func (r *SupplierRepository) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	args := []any{}
	argPos := 1

	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR contact_person ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+search+"%")
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	return collectSuppliers(rows)
}

// ListTopRated devuelve los proveedores activos mejor calificados.
func (r *SupplierRepository) ListTopRated(limit int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE is_active = true
		ORDER BY rating DESC, name
		LIMIT $1`
	rows, err := r.db.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores top: %w", err)
	}
	return collectSuppliers(rows)
}
