// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a single physical unit in the shared pool (a VR
// headset). A device points at exactly one current location, or none at
// all if it has never been provisioned. The engine only ever overwrites
// that reference, it never appends to it.
type Device struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`      // free-text tag, e.g. headset model
	SerialNumber string    `json:"serial_number"` // optional, may be empty
	Location     *Location `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReservationWindow returns the date window derived from the device's
// current location. It is non-zero only while the device sits at a
// reservation; pool and person locations contribute nothing.
func (d *Device) ReservationWindow() DateWindow {
	if d.Location == nil || d.Location.Kind != LocationReservation {
		return DateWindow{}
	}

	return d.Location.Window
}

// Provisioned reports whether the device has ever been assigned a
// location. Unprovisioned devices are treated as "not yet in service"
// rather than free stock.
func (d *Device) Provisioned() bool {
	return d.Location != nil
}

// AtLocation reports whether the device currently sits at the given location.
func (d *Device) AtLocation(locationID uuid.UUID) bool {
	return d.Location != nil && d.Location.ID == locationID
}
