package usecase

import (
	"context"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateClosureInput struct {
	CourtID *uuid.UUID // nil blocks every court
	Start   time.Time
	End     time.Time
	Reason  *string
}

type ClosureUseCase interface {
	CreateClosure(ctx context.Context, input CreateClosureInput) (*closure.Closure, error)
	GetClosure(ctx context.Context, id uuid.UUID) (*closure.Closure, error)
	ListClosures(ctx context.Context, from, to *time.Time) ([]*closure.Closure, error)
	DeleteClosure(ctx context.Context, id uuid.UUID) error
}

type closureUseCaseImpl struct {
	closureRepo ClosureRepository
	courtRepo   CourtRepository
}

func NewClosureUseCase(closureRepo ClosureRepository, courtRepo CourtRepository) ClosureUseCase {
	return &closureUseCaseImpl{
		closureRepo: closureRepo,
		courtRepo:   courtRepo,
	}
}

func (c *closureUseCaseImpl) CreateClosure(ctx context.Context, input CreateClosureInput) (*closure.Closure, error) {
	if input.CourtID != nil {
		if _, err := c.courtRepo.FindByID(ctx, *input.CourtID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrCourtNotFound
			}
			return nil, errs.Wrap(err, "failed to find court")
		}
	}

	entity, err := closure.NewClosure(input.CourtID, input.Start, input.End, input.Reason)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	if err := c.closureRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Wrap(err, "failed to create closure")
	}
	return entity, nil
}

func (c *closureUseCaseImpl) GetClosure(ctx context.Context, id uuid.UUID) (*closure.Closure, error) {
	entity, err := c.closureRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClosureNotFound
		}
		return nil, errs.Wrap(err, "failed to find closure")
	}
	return entity, nil
}

func (c *closureUseCaseImpl) ListClosures(ctx context.Context, from, to *time.Time) ([]*closure.Closure, error) {
	closures, err := c.closureRepo.List(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list closures")
	}
	return closures, nil
}

func (c *closureUseCaseImpl) DeleteClosure(ctx context.Context, id uuid.UUID) error {
	if err := c.closureRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrClosureNotFound
		}
		return errs.Wrap(err, "failed to delete closure")
	}
	return nil
}
