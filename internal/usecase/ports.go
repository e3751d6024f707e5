package usecase

import (
	"context"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/domain/court"
	"reservatenis/internal/domain/notification"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
	List(ctx context.Context, includeInactive bool) ([]*court.Court, error)
	Update(ctx context.Context, c *court.Court) error
}

// ReservationFilter narrows reservation listings. Nil fields are ignored.
type ReservationFilter struct {
	CourtID *uuid.UUID
	UserID  *uuid.UUID
	From    *time.Time
	To      *time.Time
}

type ReservationRepository interface {
	// Create persists a reservation atomically: the insert fails with a
	// CONFLICT repository error when a non-cancelled reservation overlaps
	// the slot on the same court, including one inserted concurrently.
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error)
	// ListBlocking returns non-cancelled reservations on the court whose
	// interval intersects [from, to).
	ListBlocking(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	// ExpireLapsed cancels pending reservations whose hold deadline passed
	// and reports how many were touched.
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
}

type ClosureRepository interface {
	Create(ctx context.Context, c *closure.Closure) error
	FindByID(ctx context.Context, id uuid.UUID) (*closure.Closure, error)
	List(ctx context.Context, from, to *time.Time) ([]*closure.Closure, error)
	// ListBlocking returns closures that apply to the court (court-specific
	// or facility-wide) and intersect [from, to).
	ListBlocking(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*closure.Closure, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	Update(ctx context.Context, n *notification.Notification) error
	ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]*notification.Notification, error)
}
