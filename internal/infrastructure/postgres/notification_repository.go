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

// NotificationRepository implementación PostgreSQL de notificaciones.
type NotificationRepository struct {
	db Querier
}

// NewNotificationRepository crea el repositorio.
func NewNotificationRepository(db Querier) repository.NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `id, title, message, type, priority, is_read,
	user_id, related_id, related_type, created_at`

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.IsRead,
		&n.UserID, &n.RelatedID, &n.RelatedType, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Create inserta la notificación.
func (r *NotificationRepository) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, type, priority, is_read,
			user_id, related_id, related_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		n.ID, n.Title, n.Message, n.Type, n.Priority, n.IsRead,
		n.UserID, n.RelatedID, n.RelatedType, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar notificación: %w", err)
	}
	return nil
}

// GetByID busca una notificación por su ID; nil si no existe.
func (r *NotificationRepository) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	return scanNotification(r.db.QueryRow(context.Background(), query, id))
}

// List devuelve notificaciones filtrando por leídas/no leídas,
// de la más reciente a la más antigua.
func (r *NotificationRepository) List(isRead bool, limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE is_read = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, isRead, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar notificaciones: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkAsRead marca la notificación como leída; idempotente sobre ya leídas.
func (r *NotificationRepository) MarkAsRead(id string) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("marcar notificación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountUnread cuenta las notificaciones sin leer.
func (r *NotificationRepository) CountUnread() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE is_read = false`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar no leídas: %w", err)
	}
	return count, nil
}

// HasUnread indica si existe una notificación sin leer del tipo dado para la
// entidad relacionada. Sostiene la deduplicación de alertas de stock bajo.
func (r *NotificationRepository) HasUnread(notifType, relatedType, relatedID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE type = $1 AND related_type = $2 AND related_id = $3
				AND is_read = false
		)`
	var exists bool
	err := r.db.QueryRow(context.Background(), query, notifType, relatedType, relatedID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar no leídas: %w", err)
	}
	return exists, nil
}
