// Package availability implements the pure interval-overlap engine used
// to decide whether devices are free over a queried date range. It does
// no I/O; callers load devices (with their current locations) and pass
// them in.
package availability

import (
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
)

// Overlaps reports whether two date windows intersect. All boundaries are
// inclusive, so windows that merely touch still overlap. An open side is
// treated as unbounded, except that a fully open window overlaps nothing:
// a device with no reservation window is free, not busy forever.
// Overlap is commutative: Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b entity.DateWindow) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}

	startsBeforeEnd := func(start, end *time.Time) bool {
		if start == nil || end == nil {
			return true
		}

		return !start.After(*end)
	}

	return startsBeforeEnd(b.Start, a.End) && startsBeforeEnd(a.Start, b.End)
}

// IsAvailable reports whether a device with the given reservation window
// is free over the closed interval [queryStart, queryEnd]. A zero window
// means available, even when the device is checked out to a person:
// only the window is inspected here, never the location kind. Callers
// that want to exclude person-held devices must filter on kind (see
// Options.ExcludePersonHeld).
func IsAvailable(window entity.DateWindow, queryStart, queryEnd time.Time) bool {
	return !Overlaps(window, entity.DateWindow{Start: &queryStart, End: &queryEnd})
}

// Options narrows a Filter result beyond the pure window check.
type Options struct {
	// RequireProvisioned drops devices that have never been assigned any
	// location; the product treats those as "not yet in service".
	RequireProvisioned bool

	// ExcludePersonHeld drops devices currently held by a person. Without
	// it, person-held devices read as available because they carry no
	// reservation window.
	ExcludePersonHeld bool

	// Category keeps only devices with this tag when non-empty.
	Category string

	// ExcludeLocation drops devices currently sitting at this location,
	// used to hide a reservation's own devices from its candidate list.
	ExcludeLocation uuid.UUID
}

// Filter returns the devices available over [queryStart, queryEnd],
// narrowed by opts. The input order is preserved.
func Filter(devices []*entity.Device, queryStart, queryEnd time.Time, opts Options) []*entity.Device {
	out := make([]*entity.Device, 0, len(devices))
	for _, d := range devices {
		if opts.RequireProvisioned && !d.Provisioned() {
			continue
		}
		if opts.ExcludePersonHeld && d.Location != nil && d.Location.Kind == entity.LocationPerson {
			continue
		}
		if opts.Category != "" && d.Category != opts.Category {
			continue
		}
		if opts.ExcludeLocation != uuid.Nil && d.AtLocation(opts.ExcludeLocation) {
			continue
		}
		if !IsAvailable(d.ReservationWindow(), queryStart, queryEnd) {
			continue
		}
		out = append(out, d)
	}

	return out
}

// CandidatesForReservation returns the provisioned devices that could be
// added to the reservation over its own window, excluding devices already
// assigned to it. Reservations without a complete window have no
// well-defined candidate set and yield nil.
func CandidatesForReservation(devices []*entity.Device, reservation *entity.Location) []*entity.Device {
	if reservation == nil || reservation.Window.Start == nil || reservation.Window.End == nil {
		return nil
	}

	return Filter(devices, *reservation.Window.Start, *reservation.Window.End, Options{
		RequireProvisioned: true,
		ExcludeLocation:    reservation.ID,
	})
}
