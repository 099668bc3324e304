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

// CategoryRepository implementación PostgreSQL de categorías de producto.
type CategoryRepository struct {
	db Querier
}

// NewCategoryRepository crea el repositorio.
func NewCategoryRepository(db Querier) repository.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserta la categoría.
func (r *CategoryRepository) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, parent_id, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.ParentID,
		category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar categoría: %w", err)
	}
	return nil
}

// GetByID busca una categoría por su ID; nil si no existe.
func (r *CategoryRepository) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, parent_id, is_active, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ParentID, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List devuelve las categorías ordenadas por nombre.
func (r *CategoryRepository) List(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, parent_id, is_active, created_at, updated_at
		FROM categories
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
