package components

import (
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/password"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewBcryptHasher,
		fx.As(new(shared.CredentialHasher)),
	),
	commands.NewCustomerResolver,
	commands.NewAccessCodeIssuer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccessCodeUseCase,
		commands.NewMeetingRoomBookingUseCase,
		commands.NewAccessCodeLifecycle,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpaceQueries,
		queries.NewAvailabilityQueries,
	),
)
