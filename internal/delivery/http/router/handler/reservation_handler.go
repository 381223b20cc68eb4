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

// ReservationHandler serves the reservation lifecycle endpoints.
type ReservationHandler struct {
	uc     usecase.SchedulingUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.SchedulingUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReservationRequest struct {
	Name      string      `json:"name" validate:"required"`
	Start     string      `json:"start" validate:"required"`
	End       string      `json:"end"`
	DeviceIDs []uuid.UUID `json:"device_ids"`
}

type terminateReservationRequest struct {
	End string `json:"end" validate:"required"`
}

// ListReservations handles GET /reservations.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	category, ok := usecase.ParseReservationCategory(c.QueryParam("category"))
	if !ok {
		return response.BindingError(c, "INVALID_INPUT",
			"category must be one of upcoming, active, pending_reception, historic")
	}

	summaries, err := h.uc.ListReservations(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "Reservations listed")
}

// CreateReservation handles POST /reservations.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	start, err := parseDate(req.Start)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "start must be a YYYY-MM-DD date")
	}
	end, err := parseDatePtr(req.End)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "end must be a YYYY-MM-DD date")
	}

	result, err := h.uc.CreateReservation(c.Request().Context(), &usecase.CreateReservationInput{
		Name:      req.Name,
		Start:     start,
		End:       end,
		DeviceIDs: req.DeviceIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Reservation created")
}

// TerminateEarly handles PATCH /reservations/:id/terminate.
func (h *ReservationHandler) TerminateEarly(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "reservation id must be a UUID")
	}

	var req terminateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid termination input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	end, err := parseDate(req.End)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "end must be a YYYY-MM-DD date")
	}

	if err := h.uc.TerminateEarly(c.Request().Context(), id, end); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation terminated early")
}

// ListCandidates handles GET /reservations/:id/candidates.
func (h *ReservationHandler) ListCandidates(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "reservation id must be a UUID")
	}

	devices, err := h.uc.ListCandidatesForReservation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Candidate devices listed")
}
