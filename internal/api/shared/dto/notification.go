package dto

import (
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// NotificationResponse represents an in-app notification
type NotificationResponse struct {
	ID        int64                   `json:"id"`
	Type      schema.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Body      string                  `json:"body,omitempty"`
	RightID   *string                 `json:"right_id,omitempty"`
	ActorID   *int64                  `json:"actor_id,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"items"`
	Offset        *uint64                `json:"offset,omitempty"`
	Total         uint64                 `json:"total"`
}

// MarkReadResponse reports how many notifications a read request touched
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// MapNotificationToDTO maps a schema.Notification to NotificationResponse
func MapNotificationToDTO(n *schema.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		RightID:   n.RightID,
		ActorID:   n.ActorID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// MapNotificationsToDTO maps a slice of notifications to a paginated list response
func MapNotificationsToDTO(ns []*schema.Notification, offset *uint64, total uint64) *NotificationListResponse {
	items := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		if mapped := MapNotificationToDTO(n); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &NotificationListResponse{
		Notifications: items,
		Offset:        offset,
		Total:         total,
	}
}
