// Package availability computes free time slots for a court on a given day.
// The computation is pure: it never touches storage and is safe to call
// concurrently.
package availability

import (
	"errors"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/domain/reservation"

	"github.com/google/uuid"
)

var ErrInvalidSlotMinutes = errors.New("slot minutes must be positive")

const (
	DefaultSlotMinutes = 60
	DefaultFromHour    = 8
	DefaultToHour      = 23
)

type Params struct {
	SlotMinutes int
	FromHour    int
	ToHour      int
}

func DefaultParams() Params {
	return Params{
		SlotMinutes: DefaultSlotMinutes,
		FromHour:    DefaultFromHour,
		ToHour:      DefaultToHour,
	}
}

// Slot is a free candidate interval. Ephemeral, never persisted.
type Slot struct {
	CourtID uuid.UUID
	Start   time.Time
	End     time.Time
}

// FreeSlots returns the candidate slots on day that no reservation or closure
// blocks, ordered by ascending start time.
//
// day carries the calendar date and location; its time-of-day component is
// ignored. Candidates start at FromHour:00 and step by SlotMinutes while the
// start stays strictly before ToHour:00. A slot's end is start + SlotMinutes
// and is not clipped to the window, so the last slot may extend past ToHour.
//
// Overlap is half-open: an interval blocks a slot iff
// interval.start < slot.end && interval.end > slot.start. Back-to-back
// bookings therefore never collide. Cancelled reservations are skipped even
// though callers are expected to pre-filter them. Closures are honored when
// they apply to the court (a closure without a court id applies to all).
//
// FromHour >= ToHour yields an empty result, not an error.
func FreeSlots(
	courtID uuid.UUID,
	day time.Time,
	reservations []*reservation.Reservation,
	closures []*closure.Closure,
	p Params,
) ([]Slot, error) {
	if p.SlotMinutes <= 0 {
		return nil, ErrInvalidSlotMinutes
	}

	slots := []Slot{}
	if p.FromHour >= p.ToHour {
		return slots, nil
	}

	year, month, dayOfMonth := day.Date()
	loc := day.Location()

	// Offsets are total minutes from midnight so that slot durations not
	// dividing 60 land on exact fractional-hour starts without drift.
	windowEnd := p.ToHour * 60
	for offset := p.FromHour * 60; offset < windowEnd; offset += p.SlotMinutes {
		start := time.Date(year, month, dayOfMonth, 0, offset, 0, 0, loc)
		end := time.Date(year, month, dayOfMonth, 0, offset+p.SlotMinutes, 0, 0, loc)

		if isBlocked(courtID, start, end, reservations, closures) {
			continue
		}

		slots = append(slots, Slot{CourtID: courtID, Start: start, End: end})
	}

	return slots, nil
}

func isBlocked(
	courtID uuid.UUID,
	start, end time.Time,
	reservations []*reservation.Reservation,
	closures []*closure.Closure,
) bool {
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		slot := r.TimeSlot()
		if slot.Start().Before(end) && slot.End().After(start) {
			return true
		}
	}

	for _, c := range closures {
		if !c.AppliesTo(courtID) {
			continue
		}
		if c.Blocks(start, end) {
			return true
		}
	}

	return false
}
