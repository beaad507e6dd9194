package api

import (
	"errors"
	"net/http"

	reqdto "smartlocker/internal/handler/dto/request"
	resdto "smartlocker/internal/handler/dto/response"
	"smartlocker/internal/handler/httperr"
	"smartlocker/internal/pkg/errs"
	"smartlocker/internal/usecase/commands"
	"smartlocker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LockerHandler struct {
	lockerCommands commands.LockerCommands
	lockerQueries  queries.LockerQueries
}

func NewLockerHandler(lockerCommands commands.LockerCommands, lockerQueries queries.LockerQueries) *LockerHandler {
	return &LockerHandler{
		lockerCommands: lockerCommands,
		lockerQueries:  lockerQueries,
	}
}

// @Summary Allocate next available locker
// @Description Lease the lowest-id available locker and return its single-use token and QR payload
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AllocationResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lockers/allocate [post]
func (h *LockerHandler) Allocate(c *gin.Context) {
	result, err := h.lockerCommands.AllocateNext(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoLockerAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "No locker available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllocationResult(result))
}

// @Summary Unlock a locker
// @Description Consume a lease token; the locker transitions to OCCUPIED and an UNLOCK command is dispatched best-effort
// @Tags lockers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param request body reqdto.UnlockLockerRequest true "Lease token"
// @Success 200 {object} resdto.UnlockResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /lockers/{id}/unlock [post]
func (h *LockerHandler) Unlock(c *gin.Context) {
	lockerID := c.Param("id")

	var req reqdto.UnlockLockerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.lockerCommands.Unlock(c.Request.Context(), lockerID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker or active lease not found", nil)
		case errors.Is(err, errs.ErrTokenMismatch):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Token does not match the active lease", nil)
		case errors.Is(err, errs.ErrTokenExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Token expired, request a new lease", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUnlockResult(result))
}

// @Summary Lock a locker
// @Description Dispatch a best-effort LOCK command without changing lease state
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 200 {object} resdto.DispatchResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/lock [post]
func (h *LockerHandler) Lock(c *gin.Context) {
	lockerID := c.Param("id")

	dispatched, err := h.lockerCommands.Lock(c.Request.Context(), lockerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.DispatchResponse{Dispatched: dispatched})
}

// @Summary Release a locker
// @Description Reset a locker to AVAILABLE after pickup; idempotent
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/release [post]
func (h *LockerHandler) Release(c *gin.Context) {
	lockerID := c.Param("id")

	if err := h.lockerCommands.Release(c.Request.Context(), lockerID); err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReleaseResponse{LockerID: lockerID, Status: "AVAILABLE"})
}

// @Summary Release a locker by occupant reference
// @Description Free whichever locker holds the given parcel reference (claim finalization)
// @Tags lockers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReleaseByOccupantRequest true "Occupant reference"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/release [post]
func (h *LockerHandler) ReleaseByOccupant(c *gin.Context) {
	var req reqdto.ReleaseByOccupantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	lockerID, err := h.lockerCommands.ReleaseByOccupant(c.Request.Context(), req.OccupantRef)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No locker holds this occupant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReleaseResponse{LockerID: lockerID, Status: "AVAILABLE"})
}

// @Summary Assign an occupant to a locker
// @Description Record the parcel back-reference on an occupied locker after a deposit
// @Tags lockers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param request body reqdto.AssignOccupantRequest true "Occupant reference"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lockers/{id}/occupant [post]
func (h *LockerHandler) AssignOccupant(c *gin.Context) {
	lockerID := c.Param("id")

	var req reqdto.AssignOccupantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.lockerCommands.AssignOccupant(c.Request.Context(), lockerID, req.OccupantRef); err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		case errors.Is(err, errs.ErrLockerNotOccupied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Locker is not occupied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Put a locker into maintenance
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/maintenance [post]
func (h *LockerHandler) SetMaintenance(c *gin.Context) {
	lockerID := c.Param("id")

	if err := h.lockerCommands.SetMaintenance(c.Request.Context(), lockerID); err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Take a locker out of maintenance
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/maintenance [delete]
func (h *LockerHandler) ClearMaintenance(c *gin.Context) {
	lockerID := c.Param("id")

	if err := h.lockerCommands.ClearMaintenance(c.Request.Context(), lockerID); err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a locker
// @Tags lockers
// @Produce json
// @Param id path string true "Locker ID"
// @Success 200 {object} resdto.LockerResponse
// @Failure 404 {object} map[string]string
// @Router /lockers/{id} [get]
func (h *LockerHandler) Get(c *gin.Context) {
	lockerID := c.Param("id")

	snap, err := h.lockerQueries.GetLocker(c.Request.Context(), lockerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLockerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Locker not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLockerSnapshot(snap))
}

// @Summary List lockers
// @Tags lockers
// @Produce json
// @Success 200 {array} resdto.LockerResponse
// @Router /lockers [get]
func (h *LockerHandler) List(c *gin.Context) {
	snaps, err := h.lockerQueries.ListLockers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLockerSnapshots(snaps))
}
