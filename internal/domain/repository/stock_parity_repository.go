package repository

import (
	"time"

	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

// StockParityRepository define el puerto para discrepancias de inventario.
type StockParityRepository interface {
	Create(parity *entity.StockParity) error
	GetByID(id string) (*entity.StockParity, error)
	List(resolved bool, limit, offset int) ([]*entity.StockParity, error)
	// Resolve marca la discrepancia como resuelta exactamente una vez:
	// si ya estaba resuelta devuelve domain.ErrConflict.
	Resolve(id, resolvedBy string, resolvedAt time.Time) error
}
