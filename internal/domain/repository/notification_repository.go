package repository

import "github.com/tu-usuario/erp-procurement/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List(isRead bool, limit, offset int) ([]*entity.Notification, error)
	// MarkAsRead es idempotente: marcar una leída no es error.
	MarkAsRead(id string) error
	CountUnread() (int, error)
	// HasUnread indica si existe una notificación sin leer del tipo dado
	// para la entidad relacionada (deduplicación de alertas de stock bajo).
	HasUnread(notifType, relatedType, relatedID string) (bool, error)
}
