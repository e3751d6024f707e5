package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"reservatenis/internal/domain/notification"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/domain/user"
	"reservatenis/internal/pkg/clock"

	"github.com/google/uuid"
)

// Notifier queues a notification record per reservation event and dispatches
// it in-process. Delivery is a structured log line; the record keeps the
// outcome so a real channel can replace it later without schema changes.
type Notifier struct {
	notificationRepo NotificationRepository
	clock            clock.Clock
}

func NewNotifier(notificationRepo NotificationRepository, clk clock.Clock) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

func (n *Notifier) NotifyReservationEvent(ctx context.Context, eventType string, res *reservation.Reservation, u *user.User) {
	recipient := ""
	if u != nil {
		recipient = u.Email().Value()
	} else if phone := res.Customer().Phone(); phone != nil {
		recipient = *phone
	}

	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"status":         res.Status().String(),
	})
	if err != nil {
		slog.Error("failed to marshal notification payload", "error", err)
		return
	}

	resID := res.ID()
	record := notification.NewNotification(&resID, userIDOf(u), "email", eventType, recipient, payload)
	if err := n.notificationRepo.Create(ctx, record); err != nil {
		slog.Error("failed to queue notification", "event_type", eventType, "error", err)
		return
	}

	n.Dispatch(ctx, record)
}

// Dispatch delivers a queued record and stores the outcome. Resends reuse
// it on records that were already delivered once.
func (n *Notifier) Dispatch(ctx context.Context, record *notification.Notification) {
	slog.Info("sending notification",
		"notification_id", record.ID(),
		"channel", record.Channel(),
		"recipient", record.Recipient(),
		"event_type", record.EventType(),
	)

	record.MarkSent(n.clock.Now())
	if err := n.notificationRepo.Update(ctx, record); err != nil {
		slog.Error("failed to mark notification sent", "notification_id", record.ID(), "error", err)
	}
}

func userIDOf(u *user.User) *uuid.UUID {
	if u == nil {
		return nil
	}
	id := u.ID()
	return &id
}
