package notification

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// Notification is a queued outbound message tied to a reservation event.
// Dispatch is in-process; the record keeps the delivery outcome.
type Notification struct {
	id            uuid.UUID
	reservationID *uuid.UUID
	userID        *uuid.UUID
	channel       string
	eventType     string
	recipient     string
	payload       []byte
	status        Status
	errorMessage  *string
	sentAt        *time.Time
	createdAt     time.Time
}

func NewNotification(
	reservationID, userID *uuid.UUID,
	channel, eventType, recipient string,
	payload []byte,
) *Notification {
	return &Notification{
		id:            uuid.New(),
		reservationID: reservationID,
		userID:        userID,
		channel:       channel,
		eventType:     eventType,
		recipient:     recipient,
		payload:       payload,
		status:        StatusPending,
	}
}

func ReconstructNotification(
	id uuid.UUID,
	reservationID, userID *uuid.UUID,
	channel, eventType, recipient string,
	payload []byte,
	status Status,
	errorMessage *string,
	sentAt *time.Time,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:            id,
		reservationID: reservationID,
		userID:        userID,
		channel:       channel,
		eventType:     eventType,
		recipient:     recipient,
		payload:       payload,
		status:        status,
		errorMessage:  errorMessage,
		sentAt:        sentAt,
		createdAt:     createdAt,
	}
}

func (n *Notification) MarkSent(now time.Time) {
	n.status = StatusSent
	n.sentAt = &now
	n.errorMessage = nil
}

func (n *Notification) MarkFailed(message string) {
	n.status = StatusFailed
	n.errorMessage = &message
}

func (n *Notification) ID() uuid.UUID            { return n.id }
func (n *Notification) ReservationID() *uuid.UUID { return n.reservationID }
func (n *Notification) UserID() *uuid.UUID       { return n.userID }
func (n *Notification) Channel() string          { return n.channel }
func (n *Notification) EventType() string        { return n.eventType }
func (n *Notification) Recipient() string        { return n.recipient }
func (n *Notification) Payload() []byte          { return n.payload }
func (n *Notification) Status() Status           { return n.status }
func (n *Notification) ErrorMessage() *string    { return n.errorMessage }
func (n *Notification) SentAt() *time.Time       { return n.sentAt }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
