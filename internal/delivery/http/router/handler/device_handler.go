package handler

import (
	"log/slog"
	"net/http"

	"gearpool/internal/delivery/http/response"
	"gearpool/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler serves the device inventory views.
type DeviceHandler struct {
	uc     usecase.SchedulingUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.SchedulingUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Census handles GET /devices/census.
func (h *DeviceHandler) Census(c echo.Context) error {
	census, err := h.uc.DeviceCensus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, census, "Device census computed")
}

// ListPool handles GET /devices/pool.
func (h *DeviceHandler) ListPool(c echo.Context) error {
	devices, err := h.uc.ListPoolDevices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Pool devices listed")
}
