package components

import (
	"reservatenis/internal/infra/memstore"
	"reservatenis/internal/infra/postgres"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Each provider picks the backend from STORE_DRIVER. The pool is nil under
// the memory driver and never touched on that path.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCourtRepository,
		NewReservationRepository,
		NewClosureRepository,
		NewUserRepository,
		NewNotificationRepository,
	),
)

func NewCourtRepository(cfg config.Config, pool *pgxpool.Pool) usecase.CourtRepository {
	if cfg.Store.Driver == "memory" {
		return memstore.NewCourtRepository()
	}
	return postgres.NewCourtRepository(pool)
}

func NewReservationRepository(cfg config.Config, pool *pgxpool.Pool) usecase.ReservationRepository {
	if cfg.Store.Driver == "memory" {
		return memstore.NewReservationRepository()
	}
	return postgres.NewReservationRepository(pool)
}

func NewClosureRepository(cfg config.Config, pool *pgxpool.Pool) usecase.ClosureRepository {
	if cfg.Store.Driver == "memory" {
		return memstore.NewClosureRepository()
	}
	return postgres.NewClosureRepository(pool)
}

func NewUserRepository(cfg config.Config, pool *pgxpool.Pool) usecase.UserRepository {
	if cfg.Store.Driver == "memory" {
		return memstore.NewUserRepository()
	}
	return postgres.NewUserRepository(pool)
}

func NewNotificationRepository(cfg config.Config, pool *pgxpool.Pool) usecase.NotificationRepository {
	if cfg.Store.Driver == "memory" {
		return memstore.NewNotificationRepository()
	}
	return postgres.NewNotificationRepository(pool)
}
