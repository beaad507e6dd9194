package bootstrap

import (
	"context"

	"smartlocker/internal/infra/bus"
	"smartlocker/internal/pkg/config"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var BusModule = fx.Module("bus",
	fx.Provide(
		NewNATSConn,
		fx.Annotate(
			func(nc *nats.Conn) *nats.Conn { return nc },
			fx.As(new(bus.Conn)),
		),
		bus.NewDispatcher,
	),
)

// NewNATSConn dials the broker with retry-on-failure so the service can come
// up before the broker does. A dead broker degrades dispatch, never startup.
func NewNATSConn(lc fx.Lifecycle, cfg config.Config) (*nats.Conn, error) {
	nc, err := bus.Connect(cfg.NATS.URL, cfg.NATS.ClientName, cfg.NATS.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			nc.Close()
			return nil
		},
	})

	return nc, nil
}
