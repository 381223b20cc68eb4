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

// LocationHandler serves the location registry endpoints.
type LocationHandler struct {
	uc     usecase.SchedulingUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.SchedulingUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPersonLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreatePerson handles POST /locations/person.
func (h *LocationHandler) CreatePerson(c echo.Context) error {
	var req createPersonLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.CreatePersonLocation(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Person location created")
}

// ListDevices handles GET /locations/:id/devices.
func (h *LocationHandler) ListDevices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "location id must be a UUID")
	}

	devices, err := h.uc.ListDevicesAtLocation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices at location listed")
}
