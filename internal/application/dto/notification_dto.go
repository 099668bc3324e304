package dto

// CreateNotificationRequest body para POST /api/notifications.
type CreateNotificationRequest struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Priority    string `json:"priority,omitempty"` // vacío = MEDIUM
	UserID      string `json:"user_id,omitempty"`
	RelatedID   string `json:"related_id,omitempty"`
	RelatedType string `json:"related_type,omitempty"`
}
