package locker

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid locker status")
	ErrEmptyLockerID      = errors.New("locker id cannot be empty")
	ErrLockerIDTooLong    = errors.New("locker id is too long (max 64 characters)")
	ErrLeaseRequired      = errors.New("leased locker must carry a lease")
	ErrLeaseNotAllowed    = errors.New("locker in this status cannot carry a lease")
	ErrOccupantNotAllowed = errors.New("only an occupied locker can carry an occupant reference")
)

const MaxLockerIDLength = 64

// Status is the locker state machine position. OCCUPIED covers both the
// window right after unlock (lease already cleared) and the period a parcel
// sits in the compartment.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusLeased      Status = "LEASED"
	StatusOccupied    Status = "OCCUPIED"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusLeased, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
