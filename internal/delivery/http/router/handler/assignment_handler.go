package handler

import (
	"log/slog"
	"net/http"

	"gearpool/internal/delivery/http/response"
	"gearpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssignmentHandler serves the assignment and check-in state machine.
type AssignmentHandler struct {
	uc     usecase.SchedulingUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.SchedulingUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		uc:     uc,
		logger: logger,
	}
}

type assignRequest struct {
	DeviceID   uuid.UUID `json:"device_id" validate:"required"`
	LocationID uuid.UUID `json:"location_id" validate:"required"`
}

type assignBatchRequest struct {
	DeviceIDs  []uuid.UUID `json:"device_ids" validate:"required,min=1"`
	LocationID uuid.UUID   `json:"location_id" validate:"required"`
}

type checkInRequest struct {
	DeviceID      uuid.UUID `json:"device_id" validate:"required"`
	ReservationID uuid.UUID `json:"reservation_id" validate:"required"`
}

type checkInBatchRequest struct {
	DeviceIDs     []uuid.UUID `json:"device_ids" validate:"required,min=1"`
	ReservationID uuid.UUID   `json:"reservation_id" validate:"required"`
}

// Assign handles POST /assignments.
func (h *AssignmentHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Assign(c.Request().Context(), req.DeviceID, req.LocationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device assigned")
}

// AssignBatch handles POST /assignments/batch. Partial success is the
// normal case: the per-item tally is always returned with HTTP 200.
func (h *AssignmentHandler) AssignBatch(c echo.Context) error {
	var req assignBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.AssignMany(c.Request().Context(), req.DeviceIDs, req.LocationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Batch assignment processed")
}

// CheckIn handles POST /check-ins.
func (h *AssignmentHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.CheckIn(c.Request().Context(), req.DeviceID, req.ReservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Device checked in")
}

// CheckInBatch handles POST /check-ins/batch.
func (h *AssignmentHandler) CheckInBatch(c echo.Context) error {
	var req checkInBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.CheckInMany(c.Request().Context(), req.DeviceIDs, req.ReservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Batch check-in processed")
}
