package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationKind discriminates the three places a device can sit.
type LocationKind string

const (
	// LocationPool is the shared stock devices return to after check-in.
	LocationPool LocationKind = "pool"
	// LocationPerson is an indefinite staff checkout with no date window.
	LocationPerson LocationKind = "person"
	// LocationReservation is a client engagement with a date window.
	LocationReservation LocationKind = "reservation"
)

// DateWindow is a closed date interval. Either side may be nil: a nil
// end means open-ended, and a window with both sides nil is zero.
type DateWindow struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// IsZero reports whether the window carries no dates at all.
func (w DateWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// Valid reports whether the window's start does not fall after its end.
// Open sides are always valid.
func (w DateWindow) Valid() bool {
	if w.Start == nil || w.End == nil {
		return true
	}

	return !w.Start.After(*w.End)
}

// Location represents one place a device can be assigned to: the shared
// pool, a person, or a client reservation. Only reservations carry a
// meaningful date window.
type Location struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Kind      LocationKind `json:"kind"`
	Window    DateWindow   `json:"window"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsReservation reports whether the location is a client reservation.
// Safe on a nil receiver so callers can test a device's current location
// without a provisioning check first.
func (l *Location) IsReservation() bool {
	return l != nil && l.Kind == LocationReservation
}
