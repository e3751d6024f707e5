package usecase

import (
	"context"

	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/pkg/password"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Email    string
	Password string
	FullName *string
	Phone    *string
	IsAdmin  bool
}

type UpdateUserInput struct {
	FullName *string
	Phone    *string
	IsAdmin  bool
	IsActive bool
}

type UserUseCase interface {
	// Register is the self-service signup: never creates admins.
	Register(ctx context.Context, input CreateUserInput) (*user.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListUsers(ctx context.Context) ([]*user.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*user.User, error)
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) Register(ctx context.Context, input CreateUserInput) (*user.User, error) {
	input.IsAdmin = false
	return u.CreateUser(ctx, input)
}

func (u *userUseCaseImpl) CreateUser(ctx context.Context, input CreateUserInput) (*user.User, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(email, hash, input.FullName, input.Phone, input.IsAdmin)
	if err := u.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to create user")
	}
	return entity, nil
}

func (u *userUseCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	entity, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return entity, nil
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*user.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (u *userUseCaseImpl) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*user.User, error) {
	entity, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	entity.UpdateProfile(input.FullName, input.Phone)
	entity.SetAdmin(input.IsAdmin)
	if input.IsActive {
		entity.Activate()
	} else {
		entity.Deactivate()
	}

	if err := u.userRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to update user")
	}
	return entity, nil
}
