package entity

import "time"

// Category representa una categoría de productos (jerárquica opcional).
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string // vacío si es raíz
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
