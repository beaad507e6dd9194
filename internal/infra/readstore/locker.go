package readstore

import (
	"context"
	"errors"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/infra"
	"smartlocker/internal/infra/query"
	"smartlocker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type LockerReadQueries interface {
	GetLockerByID(ctx context.Context, db query.DBTX, lockerID string) (query.Lockers, error)
	ListLockers(ctx context.Context, db query.DBTX) ([]query.Lockers, error)
}

type LockerReadStore struct {
	queries LockerReadQueries
	db      query.DBTX
}

func NewLockerReadStore(queries LockerReadQueries, db query.DBTX) *LockerReadStore {
	return &LockerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LockerReadStore) FindByID(ctx context.Context, lockerID string) (*shared.LockerSnapshot, error) {
	row, err := r.queries.GetLockerByID(ctx, r.db, lockerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find locker by ID", err)
	}
	return toLockerSnapshotFromRow(row)
}

func (r *LockerReadStore) FindAll(ctx context.Context) ([]*shared.LockerSnapshot, error) {
	rows, err := r.queries.ListLockers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lockers", err)
	}

	result := make([]*shared.LockerSnapshot, len(rows))
	for i, row := range rows {
		snap, err := toLockerSnapshotFromRow(row)
		if err != nil {
			return nil, err
		}
		result[i] = snap
	}
	return result, nil
}

// toLockerSnapshotFromRow rebuilds the domain aggregate from the row so the
// lease-presence and occupant invariants are enforced on every read, then
// flattens it back into a snapshot.
func toLockerSnapshotFromRow(row query.Lockers) (*shared.LockerSnapshot, error) {
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
