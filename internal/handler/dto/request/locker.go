package request

import "github.com/google/uuid"

type UnlockLockerRequest struct {
	Token string `json:"token" binding:"required"`
}

type AssignOccupantRequest struct {
	OccupantRef uuid.UUID `json:"occupant_ref" binding:"required"`
}

type ReleaseByOccupantRequest struct {
	OccupantRef uuid.UUID `json:"occupant_ref" binding:"required"`
}
