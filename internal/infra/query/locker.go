package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgxpool.Pool and pgx.Tx so queries run against either.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Lockers mirrors the lockers table row.
type Lockers struct {
	LockerID       string
	Status         string
	LeaseToken     *string
	LeaseIssuedAt  *time.Time
	LeaseExpiresAt *time.Time
	OccupantRef    *uuid.UUID
	LastOpenedAt   *time.Time
	UpdatedAt      time.Time
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const lockerColumns = `locker_id, status, lease_token, lease_issued_at, lease_expires_at, occupant_ref, last_opened_at, updated_at`

func scanLocker(row pgx.Row) (Lockers, error) {
	var l Lockers
	err := row.Scan(
		&l.LockerID,
		&l.Status,
		&l.LeaseToken,
		&l.LeaseIssuedAt,
		&l.LeaseExpiresAt,
		&l.OccupantRef,
		&l.LastOpenedAt,
		&l.UpdatedAt,
	)
	return l, err
}

const getLockerByID = `
SELECT ` + lockerColumns + `
FROM lockers
WHERE locker_id = $1
`

func (q *Queries) GetLockerByID(ctx context.Context, db DBTX, lockerID string) (Lockers, error) {
	return scanLocker(db.QueryRow(ctx, getLockerByID, lockerID))
}

const listLockers = `
SELECT ` + lockerColumns + `
FROM lockers
ORDER BY locker_id
`

func (q *Queries) ListLockers(ctx context.Context, db DBTX) ([]Lockers, error) {
	rows, err := db.Query(ctx, listLockers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Lockers
	for rows.Next() {
		l, err := scanLocker(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

// acquireNextAvailable is the allocation compare-and-swap. The outer
// status predicate re-checks the row at write time, so a concurrent winner
// makes this statement match zero rows instead of double-assigning. The inner
// select orders by locker_id to keep allocation order deterministic.
const acquireNextAvailable = `
UPDATE lockers
SET status = 'LEASED',
    lease_token = $1,
    lease_issued_at = $2,
    lease_expires_at = $3,
    updated_at = $2
WHERE locker_id = (
    SELECT locker_id FROM lockers
    WHERE status = 'AVAILABLE'
    ORDER BY locker_id
    LIMIT 1
)
AND status = 'AVAILABLE'
RETURNING ` + lockerColumns

func (q *Queries) AcquireNextAvailable(ctx context.Context, db DBTX, token string, issuedAt, expiresAt time.Time) (Lockers, error) {
	return scanLocker(db.QueryRow(ctx, acquireNextAvailable, token, issuedAt, expiresAt))
}

// consumeLease atomically validates and consumes a lease: the token match
// and the deadline check are part of the same conditional write that flips
// the locker to OCCUPIED and clears the lease fields.
const consumeLease = `
UPDATE lockers
SET status = 'OCCUPIED',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    last_opened_at = $3,
    updated_at = $3
WHERE locker_id = $1
  AND status = 'LEASED'
  AND lease_token = $2
  AND lease_expires_at > $3
RETURNING ` + lockerColumns

func (q *Queries) ConsumeLease(ctx context.Context, db DBTX, lockerID, token string, now time.Time) (Lockers, error) {
	return scanLocker(db.QueryRow(ctx, consumeLease, lockerID, token, now))
}

// expireLease reverts a single locker whose lease deadline has passed.
const expireLease = `
UPDATE lockers
SET status = 'AVAILABLE',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    updated_at = $2
WHERE locker_id = $1
  AND status = 'LEASED'
  AND lease_expires_at <= $2
`

func (q *Queries) ExpireLease(ctx context.Context, db DBTX, lockerID string, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, expireLease, lockerID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// expireAllStale is the sweep variant of expireLease across the whole set.
const expireAllStale = `
UPDATE lockers
SET status = 'AVAILABLE',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    updated_at = $1
WHERE status = 'LEASED'
  AND lease_expires_at <= $1
`

func (q *Queries) ExpireAllStale(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, expireAllStale, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// releaseLocker resets a locker unconditionally. Running it on an already
// AVAILABLE locker rewrites the same state, which is what makes Release
// idempotent.
const releaseLocker = `
UPDATE lockers
SET status = 'AVAILABLE',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    occupant_ref = NULL,
    updated_at = $2
WHERE locker_id = $1
  AND status <> 'MAINTENANCE'
`

func (q *Queries) ReleaseLocker(ctx context.Context, db DBTX, lockerID string, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, releaseLocker, lockerID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseByOccupant = `
UPDATE lockers
SET status = 'AVAILABLE',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    occupant_ref = NULL,
    updated_at = $2
WHERE occupant_ref = $1
RETURNING ` + lockerColumns

func (q *Queries) ReleaseByOccupant(ctx context.Context, db DBTX, occupantRef uuid.UUID, now time.Time) (Lockers, error) {
	return scanLocker(db.QueryRow(ctx, releaseByOccupant, occupantRef, now))
}

// assignOccupant fills the parcel back-reference after a deposit. Only an
// occupied locker can hold an occupant.
const assignOccupant = `
UPDATE lockers
SET occupant_ref = $2,
    updated_at = $3
WHERE locker_id = $1
  AND status = 'OCCUPIED'
`

func (q *Queries) AssignOccupant(ctx context.Context, db DBTX, lockerID string, occupantRef uuid.UUID, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, assignOccupant, lockerID, occupantRef, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// setMaintenance is the administrative override: unconditional, clears any
// lease and occupant on the way in.
const setMaintenance = `
UPDATE lockers
SET status = 'MAINTENANCE',
    lease_token = NULL,
    lease_issued_at = NULL,
    lease_expires_at = NULL,
    occupant_ref = NULL,
    updated_at = $2
WHERE locker_id = $1
`

func (q *Queries) SetMaintenance(ctx context.Context, db DBTX, lockerID string, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, setMaintenance, lockerID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const clearMaintenance = `
UPDATE lockers
SET status = 'AVAILABLE',
    updated_at = $2
WHERE locker_id = $1
  AND status = 'MAINTENANCE'
`

func (q *Queries) ClearMaintenance(ctx context.Context, db DBTX, lockerID string, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, clearMaintenance, lockerID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
