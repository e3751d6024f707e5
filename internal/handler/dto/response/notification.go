package response

import (
	"encoding/json"
	"time"

	"reservatenis/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID *uuid.UUID      `json:"reservation_id,omitempty"`
	UserID        *uuid.UUID      `json:"user_id,omitempty"`
	Channel       string          `json:"channel"`
	EventType     string          `json:"event_type"`
	Recipient     string          `json:"recipient"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	SentAt        *time.Time      `json:"sent_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func FromNotification(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:            n.ID(),
		ReservationID: n.ReservationID(),
		UserID:        n.UserID(),
		Channel:       n.Channel(),
		EventType:     n.EventType(),
		Recipient:     n.Recipient(),
		Payload:       n.Payload(),
		Status:        n.Status().String(),
		ErrorMessage:  n.ErrorMessage(),
		SentAt:        n.SentAt(),
		CreatedAt:     n.CreatedAt(),
	}
}

func FromNotifications(notifications []*notification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = FromNotification(n)
	}
	return out
}
