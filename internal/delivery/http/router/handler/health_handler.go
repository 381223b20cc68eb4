// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"gearpool/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	}, "Service healthy")
}

// dateLayout is the wire format for all date parameters and fields.
const dateLayout = "2006-01-02"

// parseDate parses a required YYYY-MM-DD parameter.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseDatePtr parses an optional YYYY-MM-DD parameter, nil when empty.
func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
