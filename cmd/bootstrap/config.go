package bootstrap

import (
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingSettings,
	),
)

func NewBookingSettings(cfg config.Config) (shared.BookingSettings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return shared.BookingSettings{}, err
	}
	return shared.BookingSettings{
		Location:    loc,
		LockTimeout: cfg.Booking.LockTimeout,
	}, nil
}
