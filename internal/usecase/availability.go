package usecase

import (
	"context"
	"errors"
	"time"

	"reservatenis/internal/domain/availability"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	CourtID uuid.UUID
	Day     time.Time // midnight in the scheduling timezone
	Params  availability.Params
}

type AvailabilityUseCase interface {
	GetFreeSlots(ctx context.Context, query AvailabilityQuery) ([]availability.Slot, error)
}

type availabilityUseCaseImpl struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	clock           clock.Clock
}

func NewAvailabilityUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	clk clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		clock:           clk,
	}
}

func (a *availabilityUseCaseImpl) GetFreeSlots(ctx context.Context, query AvailabilityQuery) ([]availability.Slot, error) {
	if _, err := a.reservationRepo.ExpireLapsed(ctx, a.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	c, err := a.courtRepo.FindByID(ctx, query.CourtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Wrap(err, "failed to find court")
	}
	if !c.IsActive() {
		return nil, errs.ErrCourtNotFound
	}

	dayStart := query.Day
	dayEnd := dayStart.AddDate(0, 0, 1)

	reservations, err := a.reservationRepo.ListBlocking(ctx, query.CourtID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	closures, err := a.closureRepo.ListBlocking(ctx, query.CourtID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list closures")
	}

	slots, err := availability.FreeSlots(query.CourtID, query.Day, reservations, closures, query.Params)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidSlotMinutes) {
			return nil, errs.ErrInvalidSlotMinutes
		}
		return nil, errs.Wrap(err, "failed to compute availability")
	}
	return slots, nil
}
