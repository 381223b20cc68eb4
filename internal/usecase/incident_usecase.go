package usecase

import (
	"context"
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
)

// IncidentSummary aggregates a device's incident counts. Incidents are
// informational only; nothing here gates an assignment.
type IncidentSummary struct {
	Active int64 `json:"active"`
	Total  int64 `json:"total"`
}

// IncidentUsecase tracks device fault reports independently of location
// state.
type IncidentUsecase interface {
	// CreateIncident files a new active incident against a device. There
	// is no precondition on the device's location, and a device may carry
	// several active incidents at once.
	CreateIncident(ctx context.Context, deviceID uuid.UUID, title, notes string) (*entity.Incident, error)

	// ResolveIncident archives an active incident: first the resolved
	// copy, then removal of the active record, in that order. Resolving
	// an already-archived incident fails with a not-found error rather
	// than silently succeeding. A zero resolvedAt means now.
	ResolveIncident(ctx context.Context, incidentID uuid.UUID, resolvedAt time.Time, notes string) (*entity.ResolvedIncident, error)

	// ListActiveIncidents returns a device's unresolved incidents.
	ListActiveIncidents(ctx context.Context, deviceID uuid.UUID) ([]*entity.Incident, error)

	// IncidentSummary returns active and total incident counts for a device.
	IncidentSummary(ctx context.Context, deviceID uuid.UUID) (*IncidentSummary, error)
}
