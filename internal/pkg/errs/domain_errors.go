package errs

import "errors"

// Domain-specific sentinel errors for the locker usecase layers
var (
	// Allocation errors
	ErrNoLockerAvailable = errors.New("no locker available")

	// Unlock errors
	ErrLockerNotFound = errors.New("locker not found")
	ErrTokenMismatch  = errors.New("token mismatch")
	ErrTokenExpired   = errors.New("token expired")

	// Occupant errors
	ErrLockerNotOccupied = errors.New("locker not occupied")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
