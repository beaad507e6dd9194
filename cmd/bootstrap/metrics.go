package bootstrap

import (
	"smartlocker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	reg := metrics.NewRegistry()
	metrics.RegisterCoreMetrics(reg)
	return reg
}
