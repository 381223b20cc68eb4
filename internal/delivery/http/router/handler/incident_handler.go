package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gearpool/internal/delivery/http/response"
	"gearpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IncidentHandler serves the incident overlay endpoints.
type IncidentHandler struct {
	uc     usecase.IncidentUsecase
	logger *slog.Logger
}

// NewIncidentHandler is the constructor for IncidentHandler, injected by Fx.
func NewIncidentHandler(uc usecase.IncidentUsecase, logger *slog.Logger) *IncidentHandler {
	return &IncidentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createIncidentRequest struct {
	DeviceID uuid.UUID `json:"device_id" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Notes    string    `json:"notes"`
}

type resolveIncidentRequest struct {
	ResolvedAt string `json:"resolved_at"`
	Notes      string `json:"notes"`
}

// Create handles POST /incidents.
func (h *IncidentHandler) Create(c echo.Context) error {
	var req createIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid incident input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	incident, err := h.uc.CreateIncident(c.Request().Context(), req.DeviceID, req.Title, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, incident, "Incident created")
}

// Resolve handles POST /incidents/:id/resolve.
func (h *IncidentHandler) Resolve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "incident id must be a UUID")
	}

	var req resolveIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}

	var resolvedAt time.Time
	if req.ResolvedAt != "" {
		resolvedAt, err = parseDate(req.ResolvedAt)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "resolved_at must be a YYYY-MM-DD date")
		}
	}

	resolved, err := h.uc.ResolveIncident(c.Request().Context(), id, resolvedAt, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolved, "Incident resolved")
}

// ListForDevice handles GET /devices/:id/incidents.
func (h *IncidentHandler) ListForDevice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "device id must be a UUID")
	}

	incidents, err := h.uc.ListActiveIncidents(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, incidents, "Active incidents listed")
}

// Summary handles GET /devices/:id/incidents/summary.
func (h *IncidentHandler) Summary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "device id must be a UUID")
	}

	summary, err := h.uc.IncidentSummary(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Incident summary computed")
}
