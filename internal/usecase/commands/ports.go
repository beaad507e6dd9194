package commands

import (
	"context"
	"time"

	"smartlocker/internal/usecase/shared"

	"github.com/google/uuid"
)

// LockerRepository is the write-side contract against the record store.
// Every mutating method is a single atomic conditional update; none of the
// state transitions are composed from separate reads and writes.
type LockerRepository interface {
	AcquireNext(ctx context.Context, token string, issuedAt, expiresAt time.Time) (*shared.LockerSnapshot, error)
	ConsumeLease(ctx context.Context, lockerID, token string, now time.Time) (*shared.LockerSnapshot, error)
	ExpireLease(ctx context.Context, lockerID string, now time.Time) (bool, error)
	ExpireAllStale(ctx context.Context, now time.Time) (int64, error)
	Release(ctx context.Context, lockerID string, now time.Time) error
	ReleaseByOccupant(ctx context.Context, occupantRef uuid.UUID, now time.Time) (*shared.LockerSnapshot, error)
	AssignOccupant(ctx context.Context, lockerID string, occupantRef uuid.UUID, now time.Time) error
	SetMaintenance(ctx context.Context, lockerID string, now time.Time) error
	ClearMaintenance(ctx context.Context, lockerID string, now time.Time) error
	FindByID(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error)
}

// CommandDispatcher publishes actuator commands. The boolean reports whether
// the bus client accepted the publish, not whether the device executed it.
type CommandDispatcher interface {
	SendUnlock(ctx context.Context, lockerID string, extra map[string]string) bool
	SendLock(ctx context.Context, lockerID string) bool
}

// EventBroadcaster pushes allocation/status events to display subscribers.
type EventBroadcaster interface {
	Broadcast(kind string, payload any)
}
