package components

import (
	"smartlocker/internal/infra/bus"
	"smartlocker/internal/infra/stream"
	"smartlocker/internal/pkg/clock"
	"smartlocker/internal/pkg/config"
	"smartlocker/internal/usecase/commands"
	"smartlocker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(d *bus.Dispatcher) *bus.Dispatcher { return d },
		fx.As(new(commands.CommandDispatcher)),
	),
	fx.Annotate(
		func(h *stream.Hub) *stream.Hub { return h },
		fx.As(new(commands.EventBroadcaster)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewLockerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLockerQueries,
	),
)

func NewLockerCommands(
	repo commands.LockerRepository,
	dispatcher commands.CommandDispatcher,
	broadcaster commands.EventBroadcaster,
	clk clock.Clock,
	cfg config.Config,
) commands.LockerCommands {
	return commands.NewLockerCommands(repo, dispatcher, broadcaster, clk, cfg.Lease.TTL)
}
