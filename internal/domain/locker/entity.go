package locker

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lease is a time-bounded exclusive claim on a locker. Consumption is
// represented by absence: the lease is cleared from the record in the same
// write that moves the locker to OCCUPIED.
type Lease struct {
	token     string
	issuedAt  time.Time
	expiresAt time.Time
}

func NewLease(token string, issuedAt, expiresAt time.Time) Lease {
	return Lease{token: token, issuedAt: issuedAt, expiresAt: expiresAt}
}

func (l Lease) Token() string        { return l.token }
func (l Lease) IssuedAt() time.Time  { return l.issuedAt }
func (l Lease) ExpiresAt() time.Time { return l.expiresAt }

func (l Lease) ExpiredAt(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

func (l Lease) Matches(token string) bool {
	return l.token != "" && l.token == token
}

type Locker struct {
	id           string
	status       Status
	lease        *Lease
	occupantRef  *uuid.UUID
	lastOpenedAt *time.Time
}

// NewLocker creates a locker at provisioning time. Lockers are created once
// with a fixed identity and cycle through states indefinitely.
func NewLocker(id string) (*Locker, error) {
	if err := validateLockerID(id); err != nil {
		return nil, err
	}
	return &Locker{
		id:     strings.TrimSpace(id),
		status: StatusAvailable,
	}, nil
}

// Reconstruct rebuilds a locker from stored fields, enforcing the
// lease-presence invariants along the way.
func Reconstruct(id string, status Status, lease *Lease, occupantRef *uuid.UUID, lastOpenedAt *time.Time) (*Locker, error) {
	if err := validateLockerID(id); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if status == StatusLeased && lease == nil {
		return nil, ErrLeaseRequired
	}
	if (status == StatusAvailable || status == StatusMaintenance) && lease != nil {
		return nil, ErrLeaseNotAllowed
	}
	if occupantRef != nil && status != StatusOccupied {
		return nil, ErrOccupantNotAllowed
	}
	return &Locker{
		id:           strings.TrimSpace(id),
		status:       status,
		lease:        lease,
		occupantRef:  occupantRef,
		lastOpenedAt: lastOpenedAt,
	}, nil
}

// LeaseExpired reports whether the locker holds a lease whose deadline has
// passed and was never consumed.
func (l *Locker) LeaseExpired(now time.Time) bool {
	return l.status == StatusLeased && l.lease != nil && l.lease.ExpiredAt(now)
}

func (l *Locker) HasActiveLease(now time.Time) bool {
	return l.status == StatusLeased && l.lease != nil && !l.lease.ExpiredAt(now)
}

func validateLockerID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyLockerID
	}
	if len(id) > MaxLockerIDLength {
		return ErrLockerIDTooLong
	}
	return nil
}

func (l *Locker) ID() string               { return l.id }
func (l *Locker) Status() Status           { return l.status }
func (l *Locker) Lease() *Lease            { return l.lease }
func (l *Locker) OccupantRef() *uuid.UUID  { return l.occupantRef }
func (l *Locker) LastOpenedAt() *time.Time { return l.lastOpenedAt }
