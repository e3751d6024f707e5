package response

import (
	"time"

	"reservatenis/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	CourtID       uuid.UUID  `json:"court_id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"price_cents"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID(),
		CourtID:       r.CourtID(),
		UserID:        r.UserID(),
		CustomerName:  r.Customer().Name(),
		CustomerPhone: r.Customer().Phone(),
		StartTime:     r.TimeSlot().Start(),
		EndTime:       r.TimeSlot().End(),
		Status:        r.Status().String(),
		PriceCents:    r.Price().Cents(),
		ExpiresAt:     r.ExpiresAt(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func FromReservations(reservations []*reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = FromReservation(r)
	}
	return out
}
