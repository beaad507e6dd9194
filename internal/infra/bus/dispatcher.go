package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"smartlocker/internal/pkg/clock"
	"smartlocker/internal/pkg/metrics"

	"github.com/nats-io/nats.go"
)

// Per-locker subjects for the actuator channel. The status subject is
// consumed by a separate ingestion service, not by this core.
const subjectPrefix = "smartlocker.locker."

func UnlockSubject(lockerID string) string { return subjectPrefix + lockerID + ".unlock" }
func LockSubject(lockerID string) string   { return subjectPrefix + lockerID + ".lock" }
func StatusSubject(lockerID string) string { return subjectPrefix + lockerID + ".status" }

const (
	commandUnlock = "UNLOCK"
	commandLock   = "LOCK"
)

// CommandPayload is the wire format of an actuator directive. Commands are
// level-triggered, so repeated delivery is safe and no receiver-side
// deduplication is needed.
type CommandPayload struct {
	Command   string            `json:"command"`
	LockerID  string            `json:"locker_id"`
	Timestamp time.Time         `json:"timestamp"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Conn is the slice of *nats.Conn the dispatcher uses.
type Conn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// Dispatcher publishes actuator commands best-effort: a disconnected bus
// fails the publish immediately with no queueing or retry, and the return
// value only reports acceptance by the bus client, never execution by the
// physical device.
type Dispatcher struct {
	conn   Conn
	clock  clock.Clock
	logger *slog.Logger
}

func NewDispatcher(conn Conn, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		conn:   conn,
		clock:  clk,
		logger: logger,
	}
}

func (d *Dispatcher) SendUnlock(ctx context.Context, lockerID string, extra map[string]string) bool {
	return d.publish(ctx, UnlockSubject(lockerID), CommandPayload{
		Command:   commandUnlock,
		LockerID:  lockerID,
		Timestamp: d.clock.Now(),
		Extra:     extra,
	})
}

func (d *Dispatcher) SendLock(ctx context.Context, lockerID string) bool {
	return d.publish(ctx, LockSubject(lockerID), CommandPayload{
		Command:   commandLock,
		LockerID:  lockerID,
		Timestamp: d.clock.Now(),
	})
}

func (d *Dispatcher) publish(ctx context.Context, subject string, payload CommandPayload) bool {
	metrics.DispatchAttempts.WithLabelValues(payload.Command).Inc()

	if err := ctx.Err(); err != nil {
		d.logger.Warn("command dispatch skipped, request canceled",
			"subject", subject, "error", err.Error())
		metrics.DispatchFailures.WithLabelValues(payload.Command).Inc()
		return false
	}

	if !d.conn.IsConnected() {
		d.logger.Warn("command dispatch failed, bus disconnected",
			"subject", subject, "command", payload.Command, "locker_id", payload.LockerID)
		metrics.DispatchFailures.WithLabelValues(payload.Command).Inc()
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("failed to encode command payload",
			"subject", subject, "error", err.Error())
		metrics.DispatchFailures.WithLabelValues(payload.Command).Inc()
		return false
	}

	if err := d.conn.Publish(subject, data); err != nil {
		d.logger.Warn("command publish rejected by bus client",
			"subject", subject, "command", payload.Command, "error", err.Error())
		metrics.DispatchFailures.WithLabelValues(payload.Command).Inc()
		return false
	}

	d.logger.Info("command dispatched",
		"subject", subject, "command", payload.Command, "locker_id", payload.LockerID)
	return true
}

// Connect dials the bus. RetryOnFailedConnect keeps the service usable when
// the broker is down at startup; dispatch calls fail fast until the
// connection comes up.
func Connect(url, name string, timeout time.Duration) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return conn, nil
}
