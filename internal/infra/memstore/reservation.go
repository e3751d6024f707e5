// Package memstore provides in-memory repository implementations selected at
// composition time. They back the offline/demo mode and keep tests free of a
// real database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/infra"
	"reservatenis/internal/usecase"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*reservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		byID: make(map[uuid.UUID]*reservation.Reservation),
	}
}

// Create holds the lock across the overlap check and the insert, so two
// concurrent bookings for the same slot cannot both succeed.
func (r *ReservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.CourtID() != res.CourtID() || !existing.Blocks() {
			continue
		}
		if existing.TimeSlot().Overlaps(res.TimeSlot()) {
			return infra.WrapRepoErr(infra.KindConflict, "time slot already booked", nil)
		}
	}

	r.byID[res.ID()] = res
	return nil
}

func (r *ReservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return res, nil
}

func (r *ReservationRepository) List(_ context.Context, filter usecase.ReservationFilter) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*reservation.Reservation{}
	for _, res := range r.byID {
		if filter.CourtID != nil && res.CourtID() != *filter.CourtID {
			continue
		}
		if filter.UserID != nil {
			if res.UserID() == nil || *res.UserID() != *filter.UserID {
				continue
			}
		}
		if filter.From != nil && res.TimeSlot().Start().Before(*filter.From) {
			continue
		}
		if filter.To != nil && res.TimeSlot().End().After(*filter.To) {
			continue
		}
		result = append(result, res)
	}

	sortByStart(result)
	return result, nil
}

func (r *ReservationRepository) ListBlocking(_ context.Context, courtID uuid.UUID, from, to time.Time) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*reservation.Reservation{}
	for _, res := range r.byID {
		if res.CourtID() != courtID || !res.Blocks() {
			continue
		}
		if res.TimeSlot().Start().Before(to) && res.TimeSlot().End().After(from) {
			result = append(result, res)
		}
	}

	sortByStart(result)
	return result, nil
}

func (r *ReservationRepository) Update(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[res.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	r.byID[res.ID()] = res
	return nil
}

func (r *ReservationRepository) ExpireLapsed(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired int64
	for _, res := range r.byID {
		if res.HoldLapsed(now) {
			res.Cancel()
			expired++
		}
	}
	return expired, nil
}

func sortByStart(reservations []*reservation.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].TimeSlot().Start().Before(reservations[j].TimeSlot().Start())
	})
}
