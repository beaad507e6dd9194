package commands

import (
	"context"
	"log/slog"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/infra"
	"smartlocker/internal/infra/stream"
	"smartlocker/internal/pkg/clock"
	"smartlocker/internal/pkg/errs"
	"smartlocker/internal/pkg/metrics"

	"github.com/google/uuid"
)

type AllocationResult struct {
	LockerID  string
	Token     string
	ExpiresAt time.Time
	QRContent string
}

type UnlockResult struct {
	LockerID string
	Status   locker.Status
	// Dispatched reports the physical-actuation publish outcome separately
	// from logical success: the OCCUPIED transition stands even when the bus
	// is down.
	Dispatched bool
}

type LockerCommands interface {
	AllocateNext(ctx context.Context) (*AllocationResult, error)
	Unlock(ctx context.Context, lockerID, token string) (*UnlockResult, error)
	Lock(ctx context.Context, lockerID string) (bool, error)
	Release(ctx context.Context, lockerID string) error
	ReleaseByOccupant(ctx context.Context, occupantRef uuid.UUID) (string, error)
	AssignOccupant(ctx context.Context, lockerID string, occupantRef uuid.UUID) error
	SetMaintenance(ctx context.Context, lockerID string) error
	ClearMaintenance(ctx context.Context, lockerID string) error
	SweepExpired(ctx context.Context) (int64, error)
}

type lockerCommandsImpl struct {
	repo        LockerRepository
	dispatcher  CommandDispatcher
	broadcaster EventBroadcaster
	clock       clock.Clock
	leaseTTL    time.Duration
}

func NewLockerCommands(
	repo LockerRepository,
	dispatcher CommandDispatcher,
	broadcaster EventBroadcaster,
	clk clock.Clock,
	leaseTTL time.Duration,
) LockerCommands {
	return &lockerCommandsImpl{
		repo:        repo,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		clock:       clk,
		leaseTTL:    leaseTTL,
	}
}

// AllocateNext leases the lowest-id available locker. Single-shot: a lost
// CAS race surfaces as ErrNoLockerAvailable rather than a retry loop, which
// bounds latency under contention.
func (u *lockerCommandsImpl) AllocateNext(ctx context.Context) (*AllocationResult, error) {
	token, err := locker.NewToken()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	now := u.clock.Now()
	expiresAt := now.Add(u.leaseTTL)

	snap, err := u.repo.AcquireNext(ctx, token, now, expiresAt)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.AllocationsExhausted.Inc()
			return nil, errs.Mark(err, errs.ErrNoLockerAvailable)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	metrics.AllocationsIssued.Inc()
	qr := locker.QRContent(snap.ID, token, expiresAt)

	// No actuator command yet: the physical unlock happens when the token is
	// presented. Display clients get the QR payload immediately.
	u.broadcaster.Broadcast(stream.KindAllocationUpdate, map[string]any{
		"locker_id":  snap.ID,
		"status":     snap.Status,
		"qr_content": qr,
		"expires_at": expiresAt,
	})

	return &AllocationResult{
		LockerID:  snap.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		QRContent: qr,
	}, nil
}

// Unlock consumes a lease. Validation and consumption are one conditional
// write; a zero-row result is classified afterwards with a plain read, and
// an expired lease is reclaimed on the spot (lazy expiry).
func (u *lockerCommandsImpl) Unlock(ctx context.Context, lockerID, token string) (*UnlockResult, error) {
	now := u.clock.Now()

	snap, err := u.repo.ConsumeLease(ctx, lockerID, token, now)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, u.classifyUnlockFailure(ctx, lockerID, token, now)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	metrics.Unlocks.Inc()

	dispatched := u.dispatcher.SendUnlock(ctx, lockerID, map[string]string{"trigger": "token"})
	if !dispatched {
		slog.Warn("unlock command not dispatched, locker is logically occupied",
			"locker_id", lockerID)
	}

	u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
		"locker_id": snap.ID,
		"status":    snap.Status,
	})

	return &UnlockResult{
		LockerID:   snap.ID,
		Status:     snap.Status,
		Dispatched: dispatched,
	}, nil
}

func (u *lockerCommandsImpl) classifyUnlockFailure(ctx context.Context, lockerID, token string, now time.Time) error {
	snap, err := u.repo.FindByID(ctx, lockerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLockerNotFound)
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	switch {
	case snap.Status != locker.StatusLeased || snap.LeaseToken == nil:
		// Lease already consumed, expired or reset: unknown lease reference.
		return errs.ErrLockerNotFound

	case snap.LeaseExpired(now):
		if expired, expireErr := u.repo.ExpireLease(ctx, lockerID, now); expireErr != nil {
			slog.Warn("failed to reclaim expired lease", "locker_id", lockerID, "error", expireErr.Error())
		} else if expired {
			metrics.LeasesExpired.Inc()
			u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
				"locker_id": lockerID,
				"status":    locker.StatusAvailable,
			})
		}
		if *snap.LeaseToken != token {
			return errs.ErrTokenMismatch
		}
		return errs.ErrTokenExpired

	case *snap.LeaseToken != token:
		return errs.ErrTokenMismatch

	default:
		// The conditional write lost to a concurrent transition that has
		// since been superseded; the presented lease no longer exists.
		return errs.ErrLockerNotFound
	}
}

// Lock dispatches a best-effort LOCK command without touching lease state.
func (u *lockerCommandsImpl) Lock(ctx context.Context, lockerID string) (bool, error) {
	if _, err := u.repo.FindByID(ctx, lockerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, errs.ErrLockerNotFound)
		}
		return false, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return u.dispatcher.SendLock(ctx, lockerID), nil
}

// Release resets a locker to AVAILABLE after pickup. Idempotent: releasing
// an already-available locker is a no-op.
func (u *lockerCommandsImpl) Release(ctx context.Context, lockerID string) error {
	if err := u.repo.Release(ctx, lockerID, u.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLockerNotFound)
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
		"locker_id": lockerID,
		"status":    locker.StatusAvailable,
	})
	return nil
}

// ReleaseByOccupant frees whichever locker holds the given parcel reference,
// the path taken when a claim is finalized. Returns the freed locker id.
func (u *lockerCommandsImpl) ReleaseByOccupant(ctx context.Context, occupantRef uuid.UUID) (string, error) {
	snap, err := u.repo.ReleaseByOccupant(ctx, occupantRef, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, errs.ErrLockerNotFound)
		}
		return "", errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
		"locker_id": snap.ID,
		"status":    snap.Status,
	})
	return snap.ID, nil
}

// AssignOccupant records the parcel back-reference on an occupied locker.
func (u *lockerCommandsImpl) AssignOccupant(ctx context.Context, lockerID string, occupantRef uuid.UUID) error {
	if err := u.repo.AssignOccupant(ctx, lockerID, occupantRef, u.clock.Now()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrLockerNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, errs.ErrLockerNotOccupied)
		default:
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return nil
}

func (u *lockerCommandsImpl) SetMaintenance(ctx context.Context, lockerID string) error {
	if err := u.repo.SetMaintenance(ctx, lockerID, u.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLockerNotFound)
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
		"locker_id": lockerID,
		"status":    locker.StatusMaintenance,
	})
	return nil
}

func (u *lockerCommandsImpl) ClearMaintenance(ctx context.Context, lockerID string) error {
	if err := u.repo.ClearMaintenance(ctx, lockerID, u.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLockerNotFound)
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.broadcaster.Broadcast(stream.KindStatusUpdate, map[string]any{
		"locker_id": lockerID,
		"status":    locker.StatusAvailable,
	})
	return nil
}

// SweepExpired reclaims every lease past its deadline. The background
// sweeper calls this so lockers that are never read still converge.
func (u *lockerCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	n, err := u.repo.ExpireAllStale(ctx, u.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if n > 0 {
		metrics.LeasesExpired.Add(float64(n))
		slog.Info("expired leases reclaimed", "count", n)
	}
	return n, nil
}
