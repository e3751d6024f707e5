package components

import (
	"reservatenis/internal/handler"
	"reservatenis/internal/handler/api"
	"reservatenis/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourtHandler,
		api.NewReservationHandler,
		api.NewClosureHandler,
		api.NewUserHandler,
		api.NewReportHandler,
		api.NewCalendarHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	court *api.CourtHandler,
	reservation *api.ReservationHandler,
	closure *api.ClosureHandler,
	user *api.UserHandler,
	report *api.ReportHandler,
	calendar *api.CalendarHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Court:        court,
		Reservation:  reservation,
		Closure:      closure,
		User:         user,
		Report:       report,
		Calendar:     calendar,
		Notification: notification,
	}
}
