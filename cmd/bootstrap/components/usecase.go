package components

import (
	"reservatenis/internal/domain/availability"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) reservation.PriceCalculator {
		return reservation.NewHourlyPriceCalculator(cfg.Reservation.HourlyRateCents)
	},
	func(cfg config.Config, clk clock.Clock, calc reservation.PriceCalculator) *reservation.Factory {
		return reservation.NewFactory(clk, calc, cfg.Reservation.HoldMinutes)
	},
	func(cfg config.Config) availability.Params {
		return availability.Params{
			SlotMinutes: cfg.Reservation.SlotMinutes,
			FromHour:    cfg.Reservation.OpenHour,
			ToHour:      cfg.Reservation.CloseHour,
		}
	},
	func(cfg config.Config) config.ReservationConfig {
		return cfg.Reservation
	},
	usecase.NewNotifier,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewCourtUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewReservationUseCase,
		usecase.NewClosureUseCase,
		usecase.NewReportUseCase,
		usecase.NewCalendarUseCase,
		usecase.NewNotificationUseCase,
	),
)
