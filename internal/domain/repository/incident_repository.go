package repository

import (
	"context"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrIncidentNotFound is returned when an active incident is not found.
var ErrIncidentNotFound = errors.New("incident not found")

// IncidentRepository defines the interface over the two incident
// collections. Active and resolved incidents are disjoint: resolution
// copies into the resolved collection and then removes the active record.
type IncidentRepository interface {
	// CreateIncident appends a new incident to the active collection.
	CreateIncident(ctx context.Context, incident *entity.Incident) error

	// FindActiveByID retrieves an active incident by ID.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error)

	// ListActiveByDevice retrieves the active incidents for a device.
	ListActiveByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Incident, error)

	// CountActiveByDevice counts the active incidents for a device.
	CountActiveByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// CountResolvedByDevice counts the resolved incidents for a device.
	CountResolvedByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// CreateResolvedIncident writes the resolved copy of an incident,
	// preserving its original ID.
	CreateResolvedIncident(ctx context.Context, incident *entity.ResolvedIncident) error

	// HasResolvedIncident reports whether a resolved copy already exists
	// for the given incident ID. Used to resume an interrupted resolve
	// without duplicating the copy.
	HasResolvedIncident(ctx context.Context, id uuid.UUID) (bool, error)

	// ArchiveIncident removes an incident from the active collection.
	ArchiveIncident(ctx context.Context, id uuid.UUID) error
}
