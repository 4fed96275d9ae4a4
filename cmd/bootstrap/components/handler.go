package components

import (
	"coworking-booking/internal/handler"
	"coworking-booking/internal/handler/api"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSpaceHandler,
		api.NewAccessCodeHandler,
		api.NewBookingHandler,
		NewHandlers,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	space *api.SpaceHandler,
	accessCode *api.AccessCodeHandler,
	booking *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Space:      space,
		AccessCode: accessCode,
		Booking:    booking,
	}
}
