package repository

import (
	"context"
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// ErrDuplicateLocation is returned when a location with the same name
// and kind already exists.
var ErrDuplicateLocation = errors.New("location already exists")

// LocationRepository defines the interface for location-related
// record-store operations. Locations are created on demand and never
// deleted; reservations only ever have their window end mutated.
type LocationRepository interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationByName retrieves a location by exact name and kind,
	// used to resolve the well-known pool location.
	FindLocationByName(ctx context.Context, name string, kind entity.LocationKind) (*entity.Location, error)

	// ListLocationsByKind retrieves all locations of the given kind.
	ListLocationsByKind(ctx context.Context, kind entity.LocationKind) ([]*entity.Location, error)

	// UpdateWindowEnd overwrites a location's window end date.
	UpdateWindowEnd(ctx context.Context, id uuid.UUID, end time.Time) error
}
