package queries

import (
	"context"
	"log/slog"
	"time"

	"smartlocker/internal/infra"
	"smartlocker/internal/pkg/clock"
	"smartlocker/internal/pkg/errs"
	"smartlocker/internal/pkg/metrics"
	"smartlocker/internal/usecase/shared"
)

type LockerReadStore interface {
	FindByID(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error)
	FindAll(ctx context.Context) ([]*shared.LockerSnapshot, error)
}

// LeaseExpirer applies the conditional expiry transition. Reads go through
// it so an expired lease is cleared on the next access even without the
// background sweeper.
type LeaseExpirer interface {
	ExpireLease(ctx context.Context, lockerID string, now time.Time) (bool, error)
}

type LockerQueries interface {
	GetLocker(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error)
	ListLockers(ctx context.Context) ([]*shared.LockerSnapshot, error)
}

type lockerQueriesImpl struct {
	readStore LockerReadStore
	expirer   LeaseExpirer
	clock     clock.Clock
}

func NewLockerQueries(readStore LockerReadStore, expirer LeaseExpirer, clk clock.Clock) LockerQueries {
	return &lockerQueriesImpl{
		readStore: readStore,
		expirer:   expirer,
		clock:     clk,
	}
}

func (q *lockerQueriesImpl) GetLocker(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error) {
	snap, err := q.readStore.FindByID(ctx, lockerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLockerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	now := q.clock.Now()
	if !snap.LeaseExpired(now) {
		return snap, nil
	}

	if err := q.expireStale(ctx, snap.ID, now); err != nil {
		return nil, err
	}

	snap, err = q.readStore.FindByID(ctx, lockerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return snap, nil
}

func (q *lockerQueriesImpl) ListLockers(ctx context.Context) ([]*shared.LockerSnapshot, error) {
	snaps, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	now := q.clock.Now()
	stale := false
	for _, snap := range snaps {
		if snap.LeaseExpired(now) {
			if err := q.expireStale(ctx, snap.ID, now); err != nil {
				return nil, err
			}
			stale = true
		}
	}
	if !stale {
		return snaps, nil
	}

	snaps, err = q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return snaps, nil
}

func (q *lockerQueriesImpl) expireStale(ctx context.Context, lockerID string, now time.Time) error {
	expired, err := q.expirer.ExpireLease(ctx, lockerID, now)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if expired {
		metrics.LeasesExpired.Inc()
		slog.Info("expired lease cleared on read", "locker_id", lockerID)
	}
	return nil
}
