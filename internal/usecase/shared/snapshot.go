package shared

import (
	"time"

	"smartlocker/internal/domain/locker"

	"github.com/google/uuid"
)

// LockerSnapshot is the read model of a locker record. Lease fields are
// pointers because the lease is represented by absence once consumed or
// expired.
type LockerSnapshot struct {
	ID             string
	Status         locker.Status
	LeaseToken     *string
	LeaseIssuedAt  *time.Time
	LeaseExpiresAt *time.Time
	OccupantRef    *uuid.UUID
	LastOpenedAt   *time.Time
	UpdatedAt      time.Time
}

// LeaseExpired reports whether the snapshot shows an unconsumed lease past
// its deadline.
func (s *LockerSnapshot) LeaseExpired(now time.Time) bool {
	return s.Status == locker.StatusLeased && s.LeaseExpiresAt != nil && !now.Before(*s.LeaseExpiresAt)
}
