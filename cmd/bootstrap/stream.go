package bootstrap

import (
	"log/slog"

	"smartlocker/internal/infra/stream"
	"smartlocker/internal/pkg/config"

	"go.uber.org/fx"
)

var StreamModule = fx.Module("stream",
	fx.Provide(
		NewHub,
	),
)

func NewHub(cfg config.Config, logger *slog.Logger) *stream.Hub {
	return stream.NewHub(cfg.Stream.SubscriberBuffer, logger)
}
