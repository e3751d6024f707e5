package usecase

import (
	"context"

	"reservatenis/internal/domain/court"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type UpdateCourtInput struct {
	Name     string
	Surface  *string
	IsActive bool
}

type CourtUseCase interface {
	CreateCourt(ctx context.Context, name string, surface *string) (*court.Court, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*court.Court, error)
	ListCourts(ctx context.Context, includeInactive bool) ([]*court.Court, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, input UpdateCourtInput) (*court.Court, error)
	DeactivateCourt(ctx context.Context, id uuid.UUID) error
}

type courtUseCaseImpl struct {
	courtRepo CourtRepository
}

func NewCourtUseCase(courtRepo CourtRepository) CourtUseCase {
	return &courtUseCaseImpl{courtRepo: courtRepo}
}

func (c *courtUseCaseImpl) CreateCourt(ctx context.Context, name string, surface *string) (*court.Court, error) {
	entity, err := court.NewCourt(name, surface)
	if err != nil {
		return nil, err
	}

	if err := c.courtRepo.Create(ctx, entity); err != nil {
		return nil, mapCourtRepoErr(err, "failed to create court")
	}
	return entity, nil
}

func (c *courtUseCaseImpl) GetCourt(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	entity, err := c.courtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCourtRepoErr(err, "failed to find court")
	}
	return entity, nil
}

func (c *courtUseCaseImpl) ListCourts(ctx context.Context, includeInactive bool) ([]*court.Court, error) {
	courts, err := c.courtRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list courts")
	}
	return courts, nil
}

func (c *courtUseCaseImpl) UpdateCourt(ctx context.Context, id uuid.UUID, input UpdateCourtInput) (*court.Court, error) {
	entity, err := c.courtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCourtRepoErr(err, "failed to find court")
	}

	if err := entity.Rename(input.Name); err != nil {
		return nil, err
	}
	entity.SetSurface(input.Surface)
	if input.IsActive {
		entity.Activate()
	} else {
		entity.Deactivate()
	}

	if err := c.courtRepo.Update(ctx, entity); err != nil {
		return nil, mapCourtRepoErr(err, "failed to update court")
	}
	return entity, nil
}

// DeactivateCourt is the delete operation: historical reservations keep
// referencing the court, so rows are never removed.
func (c *courtUseCaseImpl) DeactivateCourt(ctx context.Context, id uuid.UUID) error {
	entity, err := c.courtRepo.FindByID(ctx, id)
	if err != nil {
		return mapCourtRepoErr(err, "failed to find court")
	}

	entity.Deactivate()
	if err := c.courtRepo.Update(ctx, entity); err != nil {
		return mapCourtRepoErr(err, "failed to deactivate court")
	}
	return nil
}

func mapCourtRepoErr(err error, msg string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrCourtNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrCourtNameTaken)
	default:
		return errs.Wrap(err, msg)
	}
}
