package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"smartlocker/internal/pkg/config"
	"smartlocker/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper runs the periodic expired-lease sweep. Reads already reclaim
// stale leases lazily; the sweep keeps listings honest when nobody is reading.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, lockerCommands commands.LockerCommands, logger *slog.Logger) {
	if cfg.Lease.SweepInterval <= 0 {
		logger.Info("lease sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Lease.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						swept, err := lockerCommands.SweepExpired(ctx)
						if err != nil {
							logger.Error("lease sweep failed", "error", err)
							continue
						}
						if swept > 0 {
							logger.Info("expired leases reclaimed", "count", swept)
						}
					case <-ctx.Done():
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
