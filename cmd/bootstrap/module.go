package bootstrap

import (
	"coworking-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	ValidatorModule,
	BookingInfraModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
