package usecase

import (
	"context"
	"errors"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	CourtID       uuid.UUID
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerPhone *string
	// TargetUserID lets an admin book on behalf of another user.
	TargetUserID *uuid.UUID
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, actor Actor, input CreateReservationInput) (*reservation.Reservation, error)
	GetReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error)
	ListReservations(ctx context.Context, actor Actor, filter ReservationFilter) ([]*reservation.Reservation, error)
	ConfirmReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	closureRepo     ClosureRepository
	userRepo        UserRepository
	factory         *reservation.Factory
	notifier        *Notifier
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	closureRepo ClosureRepository,
	userRepo UserRepository,
	factory *reservation.Factory,
	notifier *Notifier,
	clk clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		closureRepo:     closureRepo,
		userRepo:        userRepo,
		factory:         factory,
		notifier:        notifier,
		clock:           clk,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, actor Actor, input CreateReservationInput) (*reservation.Reservation, error) {
	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	if err := r.ensureBookableCourt(ctx, input.CourtID); err != nil {
		return nil, err
	}

	slot, err := reservation.NewTimeSlot(input.Start, input.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	blocking, err := r.closureRepo.ListBlocking(ctx, input.CourtID, input.Start, input.End)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check closures")
	}
	if len(blocking) > 0 {
		return nil, errs.ErrSlotClosed
	}

	bookingUser, err := r.resolveBookingUser(ctx, actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}

	customer, err := reservation.NewCustomer(input.CustomerName, input.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCustomer)
	}

	var bookingUserID *uuid.UUID
	if bookingUser != nil {
		id := bookingUser.ID()
		bookingUserID = &id
	}

	res, err := r.factory.CreateReservation(input.CourtID, bookingUserID, customer, slot)
	if err != nil {
		return nil, err
	}

	if err := r.reservationRepo.Create(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotConflict
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Wrap(err, "failed to create reservation")
	}

	r.notifier.NotifyReservationEvent(ctx, "reservation_created", res, bookingUser)
	return res, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	res, err := r.findAuthorized(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationUseCaseImpl) ListReservations(ctx context.Context, actor Actor, filter ReservationFilter) ([]*reservation.Reservation, error) {
	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	// Non-admins only ever see their own reservations.
	if !actor.IsAdmin {
		id := actor.ID
		filter.UserID = &id
	}

	reservations, err := r.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return reservations, nil
}

func (r *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	res, err := r.findAuthorized(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	alreadyConfirmed := res.Status() == reservation.StatusConfirmed
	if err := res.Confirm(); err != nil {
		if errors.Is(err, reservation.ErrConfirmCancelled) {
			return nil, errs.ErrInvalidTransition
		}
		return nil, err
	}
	if alreadyConfirmed {
		return res, nil
	}

	if err := r.reservationRepo.Update(ctx, res); err != nil {
		return nil, errs.Wrap(err, "failed to confirm reservation")
	}

	r.notifier.NotifyReservationEvent(ctx, "reservation_confirmed", res, r.ownerOf(ctx, res))
	return res, nil
}

// CancelReservation is idempotent: cancelling an already cancelled
// reservation returns it unchanged.
func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	res, err := r.findAuthorized(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if res.IsCancelled() {
		return res, nil
	}

	res.Cancel()
	if err := r.reservationRepo.Update(ctx, res); err != nil {
		return nil, errs.Wrap(err, "failed to cancel reservation")
	}

	r.notifier.NotifyReservationEvent(ctx, "reservation_cancelled", res, r.ownerOf(ctx, res))
	return res, nil
}

func (r *reservationUseCaseImpl) findAuthorized(ctx context.Context, actor Actor, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	if actor.IsAdmin {
		return res, nil
	}
	if res.UserID() != nil && *res.UserID() == actor.ID {
		return res, nil
	}
	return nil, errs.ErrForbidden
}

func (r *reservationUseCaseImpl) ensureBookableCourt(ctx context.Context, courtID uuid.UUID) error {
	c, err := r.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCourtNotFound
		}
		return errs.Wrap(err, "failed to find court")
	}
	if !c.IsActive() {
		return errs.ErrCourtNotFound
	}
	return nil
}

func (r *reservationUseCaseImpl) resolveBookingUser(ctx context.Context, actor Actor, targetUserID *uuid.UUID) (*user.User, error) {
	userID := actor.ID
	if targetUserID != nil && actor.IsAdmin {
		userID = *targetUserID
	}

	u, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking user")
	}
	return u, nil
}

func (r *reservationUseCaseImpl) ownerOf(ctx context.Context, res *reservation.Reservation) *user.User {
	if res.UserID() == nil {
		return nil
	}
	u, err := r.userRepo.FindByID(ctx, *res.UserID())
	if err != nil {
		return nil
	}
	return u
}
