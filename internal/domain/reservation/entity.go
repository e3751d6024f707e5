package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrConfirmCancelled    = errors.New("cannot confirm a cancelled reservation")
	ErrReservationConflict = errors.New("reservation conflicts with an existing booking")
)

type Reservation struct {
	id        uuid.UUID
	courtID   uuid.UUID
	userID    *uuid.UUID
	customer  Customer
	timeSlot  TimeSlot
	status    Status
	price     Money
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a pending reservation. A positive holdMinutes sets
// the deadline after which the unconfirmed hold lapses.
func NewReservation(
	courtID uuid.UUID,
	userID *uuid.UUID,
	customer Customer,
	slot TimeSlot,
	price Money,
	now time.Time,
	holdMinutes int,
) (*Reservation, error) {
	if price.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	var expiresAt *time.Time
	if holdMinutes > 0 {
		deadline := now.Add(time.Duration(holdMinutes) * time.Minute)
		expiresAt = &deadline
	}

	return &Reservation{
		id:        uuid.New(),
		courtID:   courtID,
		userID:    userID,
		customer:  customer,
		timeSlot:  slot,
		status:    StatusPending,
		price:     price,
		expiresAt: expiresAt,
	}, nil
}

func ReconstructReservation(
	id, courtID uuid.UUID,
	userID *uuid.UUID,
	customer Customer,
	timeSlot TimeSlot,
	status Status,
	price Money,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		courtID:   courtID,
		userID:    userID,
		customer:  customer,
		timeSlot:  timeSlot,
		status:    status,
		price:     price,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Confirm moves a pending reservation to confirmed and drops the hold
// deadline. Confirming an already confirmed reservation is a no-op;
// a cancelled reservation cannot be revived.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusCancelled:
		return ErrConfirmCancelled
	case StatusConfirmed:
		return nil
	default:
		r.status = StatusConfirmed
		r.expiresAt = nil
		return nil
	}
}

// Cancel is idempotent: cancelling an already cancelled reservation succeeds.
func (r *Reservation) Cancel() {
	r.status = StatusCancelled
	r.expiresAt = nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// Blocks reports whether the reservation still occupies its slot.
func (r *Reservation) Blocks() bool {
	return r.status != StatusCancelled
}

// HoldLapsed reports whether a pending reservation outlived its hold deadline.
func (r *Reservation) HoldLapsed(now time.Time) bool {
	return r.status == StatusPending && r.expiresAt != nil && now.After(*r.expiresAt)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CourtID() uuid.UUID   { return r.courtID }
func (r *Reservation) UserID() *uuid.UUID   { return r.userID }
func (r *Reservation) Customer() Customer   { return r.customer }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Price() Money         { return r.price }
func (r *Reservation) ExpiresAt() *time.Time { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
