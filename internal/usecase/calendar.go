package usecase

import (
	"context"
	"fmt"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/pkg/ics"

	"github.com/google/uuid"
)

type CalendarUseCase interface {
	// CourtFeed renders confirmed reservations on the court starting within
	// the next `days` days as an iCalendar feed.
	CourtFeed(ctx context.Context, courtID uuid.UUID, days int) (string, error)
	UserFeed(ctx context.Context, userID uuid.UUID, days int) (string, error)
}

type calendarUseCaseImpl struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	userRepo        UserRepository
	clock           clock.Clock
}

func NewCalendarUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	userRepo UserRepository,
	clk clock.Clock,
) CalendarUseCase {
	return &calendarUseCaseImpl{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		userRepo:        userRepo,
		clock:           clk,
	}
}

func (c *calendarUseCaseImpl) CourtFeed(ctx context.Context, courtID uuid.UUID, days int) (string, error) {
	courtEntity, err := c.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.ErrCourtNotFound
		}
		return "", errs.Wrap(err, "failed to find court")
	}
	if !courtEntity.IsActive() {
		return "", errs.ErrCourtNotFound
	}

	reservations, err := c.listConfirmed(ctx, ReservationFilter{CourtID: &courtID}, days)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("Court %s", courtEntity.Name())
	return ics.Feed(name, c.toEvents(reservations)), nil
}

func (c *calendarUseCaseImpl) UserFeed(ctx context.Context, userID uuid.UUID, days int) (string, error) {
	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.ErrUserNotFound
		}
		return "", errs.Wrap(err, "failed to find user")
	}

	reservations, err := c.listConfirmed(ctx, ReservationFilter{UserID: &userID}, days)
	if err != nil {
		return "", err
	}

	owner := u.Email().Value()
	if u.FullName() != nil {
		owner = *u.FullName()
	}
	return ics.Feed(fmt.Sprintf("Reservas %s", owner), c.toEvents(reservations)), nil
}

func (c *calendarUseCaseImpl) listConfirmed(ctx context.Context, filter ReservationFilter, days int) ([]*reservation.Reservation, error) {
	from := c.clock.Now()
	to := from.Add(time.Duration(days) * 24 * time.Hour)
	filter.From = &from
	filter.To = &to

	all, err := c.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	confirmed := []*reservation.Reservation{}
	for _, res := range all {
		if res.Status() == reservation.StatusConfirmed {
			confirmed = append(confirmed, res)
		}
	}
	return confirmed, nil
}

func (c *calendarUseCaseImpl) toEvents(reservations []*reservation.Reservation) []ics.Event {
	events := make([]ics.Event, 0, len(reservations))
	for _, res := range reservations {
		events = append(events, ics.Event{
			UID:         fmt.Sprintf("reservation-%s@reservatenis", res.ID()),
			Stamp:       res.CreatedAt(),
			Start:       res.TimeSlot().Start(),
			End:         res.TimeSlot().End(),
			Summary:     fmt.Sprintf("Court %s - %s", res.CourtID(), res.Customer().Name()),
			Description: fmt.Sprintf("Status: %s", res.Status()),
		})
	}
	return events
}
