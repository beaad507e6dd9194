package repository

import (
	"context"
	"errors"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/infra"
	"smartlocker/internal/infra/query"
	"smartlocker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LockerWriteQueries is the slice of the query layer the write repository
// needs. Declared here so tests can substitute it.
type LockerWriteQueries interface {
	GetLockerByID(ctx context.Context, db query.DBTX, lockerID string) (query.Lockers, error)
	AcquireNextAvailable(ctx context.Context, db query.DBTX, token string, issuedAt, expiresAt time.Time) (query.Lockers, error)
	ConsumeLease(ctx context.Context, db query.DBTX, lockerID, token string, now time.Time) (query.Lockers, error)
	ExpireLease(ctx context.Context, db query.DBTX, lockerID string, now time.Time) (int64, error)
	ExpireAllStale(ctx context.Context, db query.DBTX, now time.Time) (int64, error)
	ReleaseLocker(ctx context.Context, db query.DBTX, lockerID string, now time.Time) (int64, error)
	ReleaseByOccupant(ctx context.Context, db query.DBTX, occupantRef uuid.UUID, now time.Time) (query.Lockers, error)
	AssignOccupant(ctx context.Context, db query.DBTX, lockerID string, occupantRef uuid.UUID, now time.Time) (int64, error)
	SetMaintenance(ctx context.Context, db query.DBTX, lockerID string, now time.Time) (int64, error)
	ClearMaintenance(ctx context.Context, db query.DBTX, lockerID string, now time.Time) (int64, error)
}

type LockerRepository struct {
	queries LockerWriteQueries
	db      query.DBTX
}

func NewLockerRepository(queries LockerWriteQueries, db query.DBTX) *LockerRepository {
	return &LockerRepository{
		queries: queries,
		db:      db,
	}
}

// AcquireNext performs the allocation CAS. Zero rows means every locker was
// taken by the time the write committed; single-shot semantics leave the
// retry decision to the caller.
func (r *LockerRepository) AcquireNext(ctx context.Context, token string, issuedAt, expiresAt time.Time) (*shared.LockerSnapshot, error) {
	row, err := r.queries.AcquireNextAvailable(ctx, r.db, token, issuedAt, expiresAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no available locker", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to acquire locker", err)
	}
	return toLockerSnapshot(row)
}

// ConsumeLease flips a valid lease to OCCUPIED. Zero rows means the
// precondition (leased, matching token, unexpired) did not hold; the caller
// classifies the failure with a follow-up read.
func (r *LockerRepository) ConsumeLease(ctx context.Context, lockerID, token string, now time.Time) (*shared.LockerSnapshot, error) {
	row, err := r.queries.ConsumeLease(ctx, r.db, lockerID, token, now)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("lease precondition failed", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to consume lease", err)
	}
	return toLockerSnapshot(row)
}

func (r *LockerRepository) ExpireLease(ctx context.Context, lockerID string, now time.Time) (bool, error) {
	rows, err := r.queries.ExpireLease(ctx, r.db, lockerID, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire lease", err)
	}
	return rows > 0, nil
}

func (r *LockerRepository) ExpireAllStale(ctx context.Context, now time.Time) (int64, error) {
	rows, err := r.queries.ExpireAllStale(ctx, r.db, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired leases", err)
	}
	return rows, nil
}

// Release resets a locker to AVAILABLE. A locker in MAINTENANCE is left
// alone; releasing an already-available locker is a no-op, not an error.
func (r *LockerRepository) Release(ctx context.Context, lockerID string, now time.Time) error {
	rows, err := r.queries.ReleaseLocker(ctx, r.db, lockerID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to release locker", err)
	}
	if rows == 0 {
		// Either unknown id or a maintenance locker; only the former is an error.
		if _, err := r.queries.GetLockerByID(ctx, r.db, lockerID); err != nil {
			if isNoRows(err) {
				return infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to verify locker", err)
		}
	}
	return nil
}

func (r *LockerRepository) ReleaseByOccupant(ctx context.Context, occupantRef uuid.UUID, now time.Time) (*shared.LockerSnapshot, error) {
	row, err := r.queries.ReleaseByOccupant(ctx, r.db, occupantRef, now)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no locker holds this occupant", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to release locker by occupant", err)
	}
	return toLockerSnapshot(row)
}

func (r *LockerRepository) AssignOccupant(ctx context.Context, lockerID string, occupantRef uuid.UUID, now time.Time) error {
	rows, err := r.queries.AssignOccupant(ctx, r.db, lockerID, occupantRef, now)
	if err != nil {
		return infra.WrapRepoErr("failed to assign occupant", err)
	}
	if rows == 0 {
		if _, err := r.queries.GetLockerByID(ctx, r.db, lockerID); err != nil {
			if isNoRows(err) {
				return infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to verify locker", err)
		}
		return infra.WrapRepoErr("locker is not occupied", nil, infra.KindConflict)
	}
	return nil
}

func (r *LockerRepository) SetMaintenance(ctx context.Context, lockerID string, now time.Time) error {
	rows, err := r.queries.SetMaintenance(ctx, r.db, lockerID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to set maintenance", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("locker not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LockerRepository) ClearMaintenance(ctx context.Context, lockerID string, now time.Time) error {
	rows, err := r.queries.ClearMaintenance(ctx, r.db, lockerID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to clear maintenance", err)
	}
	if rows == 0 {
		if _, err := r.queries.GetLockerByID(ctx, r.db, lockerID); err != nil {
			if isNoRows(err) {
				return infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to verify locker", err)
		}
		// Not in maintenance; clearing is a no-op.
	}
	return nil
}

// FindByID is the classification read used after a failed conditional write.
func (r *LockerRepository) FindByID(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error) {
	row, err := r.queries.GetLockerByID(ctx, r.db, lockerID)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find locker", err)
	}
	return toLockerSnapshot(row)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// toLockerSnapshot rebuilds the domain aggregate from the row, enforcing
// the lease-presence and occupant invariants, then flattens it back into a
// snapshot.
func toLockerSnapshot(row query.Lockers) (*shared.LockerSnapshot, error) {
	var lease *locker.Lease
	if row.LeaseToken != nil && row.LeaseIssuedAt != nil && row.LeaseExpiresAt != nil {
		l := locker.NewLease(*row.LeaseToken, *row.LeaseIssuedAt, *row.LeaseExpiresAt)
		lease = &l
	}

	status, err := locker.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt locker record", err)
	}

	ent, err := locker.Reconstruct(row.LockerID, status, lease, row.OccupantRef, row.LastOpenedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt locker record", err)
	}

	snap := &shared.LockerSnapshot{
		ID:           ent.ID(),
		Status:       ent.Status(),
		OccupantRef:  ent.OccupantRef(),
		LastOpenedAt: ent.LastOpenedAt(),
		UpdatedAt:    row.UpdatedAt,
	}
	if l := ent.Lease(); l != nil {
		token := l.Token()
		issuedAt := l.IssuedAt()
		expiresAt := l.ExpiresAt()
		snap.LeaseToken = &token
		snap.LeaseIssuedAt = &issuedAt
		snap.LeaseExpiresAt = &expiresAt
	}
	return snap, nil
}
