//go:build unit || e2e

package builder

import (
	"time"

	domlocker "smartlocker/internal/domain/locker"
	"smartlocker/internal/infra/query"
	"smartlocker/internal/usecase/shared"

	"github.com/google/uuid"
)

type LockerBuilder struct {
	ID             string
	Status         domlocker.Status
	LeaseToken     *string
	LeaseIssuedAt  *time.Time
	LeaseExpiresAt *time.Time
	OccupantRef    *uuid.UUID
	LastOpenedAt   *time.Time
	UpdatedAt      time.Time
}

func NewLockerBuilder() *LockerBuilder {
	return &LockerBuilder{
		ID:        "LOCKER_001",
		Status:    domlocker.StatusAvailable,
		UpdatedAt: time.Now(),
	}
}

func (b *LockerBuilder) With(mutate func(*LockerBuilder)) *LockerBuilder {
	mutate(b)
	return b
}

func (b *LockerBuilder) WithLease(token string, issuedAt, expiresAt time.Time) *LockerBuilder {
	b.Status = domlocker.StatusLeased
	b.LeaseToken = &token
	b.LeaseIssuedAt = &issuedAt
	b.LeaseExpiresAt = &expiresAt
	return b
}

func (b *LockerBuilder) WithOccupant(ref uuid.UUID) *LockerBuilder {
	b.Status = domlocker.StatusOccupied
	b.OccupantRef = &ref
	return b
}

// Build methods
func (b *LockerBuilder) BuildDomain() (*domlocker.Locker, error) {
	var lease *domlocker.Lease
	if b.LeaseToken != nil {
		l := domlocker.NewLease(*b.LeaseToken, *b.LeaseIssuedAt, *b.LeaseExpiresAt)
		lease = &l
	}
	return domlocker.Reconstruct(b.ID, b.Status, lease, b.OccupantRef, b.LastOpenedAt)
}

func (b *LockerBuilder) BuildSnapshot() *shared.LockerSnapshot {
	return &shared.LockerSnapshot{
		ID:             b.ID,
		Status:         b.Status,
		LeaseToken:     b.LeaseToken,
		LeaseIssuedAt:  b.LeaseIssuedAt,
		LeaseExpiresAt: b.LeaseExpiresAt,
		OccupantRef:    b.OccupantRef,
		LastOpenedAt:   b.LastOpenedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *LockerBuilder) BuildInfra() query.Lockers {
	return query.Lockers{
		LockerID:       b.ID,
		Status:         string(b.Status),
		LeaseToken:     b.LeaseToken,
		LeaseIssuedAt:  b.LeaseIssuedAt,
		LeaseExpiresAt: b.LeaseExpiresAt,
		OccupantRef:    b.OccupantRef,
		LastOpenedAt:   b.LastOpenedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
