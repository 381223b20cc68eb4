// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related record-store
// operations. Devices are created externally; the engine only reads them
// and overwrites their current location.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device, with its current location loaded,
	// by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// ListDevices retrieves all devices with their current locations loaded.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// ListDevicesByLocation retrieves the devices currently assigned to a location.
	ListDevicesByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Device, error)

	// CountDevicesByLocation returns the number of currently-assigned
	// devices per location, keyed by location ID. Locations with no
	// devices are absent from the map.
	CountDevicesByLocation(ctx context.Context) (map[uuid.UUID]int64, error)

	// UpdateLocation overwrites the device's current location reference.
	// There is no append: a device is at exactly one location. Concurrent
	// writers race with last-write-wins; the record store offers no
	// optimistic concurrency token.
	UpdateLocation(ctx context.Context, deviceID, locationID uuid.UUID) error
}
