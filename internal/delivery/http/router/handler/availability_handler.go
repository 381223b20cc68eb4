package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gearpool/internal/delivery/http/response"
	"gearpool/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AvailabilityHandler serves the free-device interval queries.
type AvailabilityHandler struct {
	uc     usecase.SchedulingUsecase
	logger *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler, injected by Fx.
func NewAvailabilityHandler(uc usecase.SchedulingUsecase, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckAvailability handles GET /availability.
func (h *AvailabilityHandler) CheckAvailability(c echo.Context) error {
	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "start must be a YYYY-MM-DD date")
	}

	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "end must be a YYYY-MM-DD date")
	}

	excludePersonHeld := false
	if raw := c.QueryParam("excludePersonHeld"); raw != "" {
		excludePersonHeld, err = strconv.ParseBool(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "excludePersonHeld must be a boolean")
		}
	}

	devices, err := h.uc.CheckAvailability(c.Request().Context(), usecase.AvailabilityQuery{
		Start:             start,
		End:               end,
		ExcludePersonHeld: excludePersonHeld,
		Category:          c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Available devices listed")
}
