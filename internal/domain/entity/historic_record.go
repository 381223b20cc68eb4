package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoricRecord is an append-only audit entry written exactly once per
// check-in event. It snapshots the device as it looked while still
// assigned to the reservation, so the trail survives later renames and
// reassignments. Records are never mutated or deleted.
type HistoricRecord struct {
	ID           uuid.UUID  `json:"id"`
	DeviceID     uuid.UUID  `json:"device_id"`
	LocationID   uuid.UUID  `json:"location_id"` // the reservation being checked in from
	DeviceName   string     `json:"device_name"`
	Category     string     `json:"category"`
	SerialNumber string     `json:"serial_number"`
	WindowStart  *time.Time `json:"window_start,omitempty"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
	CheckInAt    time.Time  `json:"check_in_at"`
}

// SnapshotDevice builds the audit snapshot for a device about to be
// checked in from the given reservation.
func SnapshotDevice(d *Device, reservation *Location, at time.Time) *HistoricRecord {
	window := d.ReservationWindow()

	return &HistoricRecord{
		ID:           uuid.New(),
		DeviceID:     d.ID,
		LocationID:   reservation.ID,
		DeviceName:   d.Name,
		Category:     d.Category,
		SerialNumber: d.SerialNumber,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		CheckInAt:    at,
	}
}
