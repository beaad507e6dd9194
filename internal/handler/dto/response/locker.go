package response

import (
	"time"

	"smartlocker/internal/usecase/commands"
	"smartlocker/internal/usecase/shared"

	"github.com/google/uuid"
)

type AllocationResponse struct {
	LockerID  string    `json:"locker_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	QRContent string    `json:"qr_content"`
}

func FromAllocationResult(r *commands.AllocationResult) *AllocationResponse {
	return &AllocationResponse{
		LockerID:  r.LockerID,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		QRContent: r.QRContent,
	}
}

type UnlockResponse struct {
	LockerID string `json:"locker_id"`
	Status   string `json:"status"`
	// Dispatched is the physical-actuation outcome, reported separately from
	// the logical transition.
	Dispatched bool `json:"dispatched"`
}

func FromUnlockResult(r *commands.UnlockResult) *UnlockResponse {
	return &UnlockResponse{
		LockerID:   r.LockerID,
		Status:     r.Status.String(),
		Dispatched: r.Dispatched,
	}
}

type DispatchResponse struct {
	Dispatched bool `json:"dispatched"`
}

type ReleaseResponse struct {
	LockerID string `json:"locker_id"`
	Status   string `json:"status"`
}

// LockerResponse is the read view of a locker. The lease token is never
// exposed on reads; it only leaves the system inside the allocation
// response and its QR payload.
type LockerResponse struct {
	LockerID       string     `json:"locker_id"`
	Status         string     `json:"status"`
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	OccupantRef    *uuid.UUID `json:"occupant_ref,omitempty"`
	LastOpenedAt   *time.Time `json:"last_opened_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromLockerSnapshot(s *shared.LockerSnapshot) *LockerResponse {
	return &LockerResponse{
		LockerID:       s.ID,
		Status:         s.Status.String(),
		LeaseExpiresAt: s.LeaseExpiresAt,
		OccupantRef:    s.OccupantRef,
		LastOpenedAt:   s.LastOpenedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromLockerSnapshots(snaps []*shared.LockerSnapshot) []*LockerResponse {
	result := make([]*LockerResponse, len(snaps))
	for i, s := range snaps {
		result[i] = FromLockerSnapshot(s)
	}
	return result
}
