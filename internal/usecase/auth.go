package usecase

import (
	"context"

	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/pkg/jwt"
	"reservatenis/internal/pkg/password"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for authorization checks.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	ValidateToken(tokenString string) (Actor, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *user.User, error) {
	u, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, errs.Wrap(err, "failed to find user by email")
	}

	if !u.IsActive() {
		return "", nil, errs.ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.IsAdmin())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	return token, u, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if !u.IsActive() {
		return nil, errs.ErrUserInactive
	}

	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (Actor, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Actor{}, errs.ErrUnauthorized
	}

	return Actor{ID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
}
