package bootstrap

import (
	"context"
	"log/slog"

	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"

	"github.com/cockroachdb/errors"
)

const (
	seedAdminEmail    = "admin@reservatenis.com"
	seedAdminPassword = "admin123"
)

var seedCourts = []struct {
	name    string
	surface string
}{
	{"Cancha 1", "Polvo de ladrillo"},
	{"Cancha 2", "Polvo de ladrillo"},
	{"Cancha 3", "Cemento"},
	{"Cancha 4", "Cemento"},
}

// Seed provisions the default admin account and courts. It is idempotent:
// records that already exist are left untouched.
func Seed(ctx context.Context, userUseCase usecase.UserUseCase, courtUseCase usecase.CourtUseCase, logger *slog.Logger) error {
	fullName := "Administrador ReservaTenis"
	phone := "+54 11 0000-0000"

	_, err := userUseCase.CreateUser(ctx, usecase.CreateUserInput{
		Email:    seedAdminEmail,
		Password: seedAdminPassword,
		FullName: &fullName,
		Phone:    &phone,
		IsAdmin:  true,
	})
	switch {
	case err == nil:
		logger.Info("admin user created", "email", seedAdminEmail)
	case errors.Is(err, errs.ErrEmailTaken):
		logger.Info("admin user already exists", "email", seedAdminEmail)
	default:
		return errs.Wrap(err, "failed to seed admin user")
	}

	created := 0
	for _, c := range seedCourts {
		surface := c.surface
		_, err := courtUseCase.CreateCourt(ctx, c.name, &surface)
		switch {
		case err == nil:
			created++
		case errors.Is(err, errs.ErrCourtNameTaken):
			// already seeded
		default:
			return errs.Wrap(err, "failed to seed court "+c.name)
		}
	}
	logger.Info("courts seeded", "total", len(seedCourts), "created", created)

	return nil
}
