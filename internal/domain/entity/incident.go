package entity

import (
	"time"

	"github.com/google/uuid"
)

// Incident is a fault report filed against a device. Incidents are
// informational: they never gate an assignment. A device may carry any
// number of simultaneous active incidents.
type Incident struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolvedIncident is the archived form of an incident. Resolution copies
// the active record into the resolved collection and then removes the
// original; an incident exists in exactly one of the two collections at a
// time. Resolved records are never deleted.
type ResolvedIncident struct {
	Incident

	ResolvedAt      time.Time `json:"resolved_at"`
	ResolutionNotes string    `json:"resolution_notes"`
}
