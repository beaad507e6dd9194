package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// AllocationsIssued tracks successful locker allocations.
	AllocationsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_allocations_issued_total",
		Help: "Total number of locker leases issued",
	})
	// AllocationsExhausted tracks allocation attempts that found no free locker.
	AllocationsExhausted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_allocations_exhausted_total",
		Help: "Total number of allocation attempts rejected for lack of an available locker",
	})
	// Unlocks tracks consumed leases.
	Unlocks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_unlocks_total",
		Help: "Total number of lease tokens consumed",
	})
	// LeasesExpired tracks leases reclaimed by lazy expiry or the sweeper.
	LeasesExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_leases_expired_total",
		Help: "Total number of leases cleared after their deadline passed",
	})
	// DispatchAttempts tracks actuator command publishes, by command kind.
	DispatchAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlocker_dispatch_attempts_total",
		Help: "Total number of actuator command publish attempts",
	}, []string{"command"})
	// DispatchFailures tracks publishes the bus client did not accept.
	DispatchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlocker_dispatch_failures_total",
		Help: "Total number of actuator command publishes rejected by the bus client",
	}, []string{"command"})
	// BroadcastEvents tracks events fanned out to display subscribers.
	BroadcastEvents = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_broadcast_events_total",
		Help: "Total number of events broadcast to display subscribers",
	})
	// SubscriberGauge reports the number of connected display subscribers.
	SubscriberGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smartlocker_stream_subscribers",
		Help: "Current number of connected display subscribers",
	})
)

// NewRegistry creates a fresh Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterCoreMetrics registers all smartlocker metrics on the provided registry.
func RegisterCoreMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		AllocationsIssued,
		AllocationsExhausted,
		Unlocks,
		LeasesExpired,
		DispatchAttempts,
		DispatchFailures,
		BroadcastEvents,
		SubscriberGauge,
	)
}
