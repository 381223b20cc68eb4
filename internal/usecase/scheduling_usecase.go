// Package usecase defines the application-facing interfaces of the
// scheduling engine together with their input and result types.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
)

// AvailabilityQuery describes a closed date interval to check devices
// against, plus the caller-visible filtering policy.
type AvailabilityQuery struct {
	Start time.Time
	End   time.Time

	// ExcludePersonHeld excludes devices checked out to a person. The
	// window check alone would report them available because person
	// assignments carry no dates; the policy is an explicit parameter
	// rather than a hidden default.
	ExcludePersonHeld bool

	// Category restricts results to devices with this tag when non-empty.
	Category string
}

// ReservationCategory buckets reservations relative to today.
type ReservationCategory string

const (
	// ReservationUpcoming starts after today.
	ReservationUpcoming ReservationCategory = "upcoming"
	// ReservationActive has started and has not yet ended.
	ReservationActive ReservationCategory = "active"
	// ReservationPendingReception has ended but still has devices assigned.
	ReservationPendingReception ReservationCategory = "pending_reception"
	// ReservationHistoric has ended, is fully checked in, and appears in
	// the recent audit trail.
	ReservationHistoric ReservationCategory = "historic"
)

// ParseReservationCategory validates a category string from a caller.
func ParseReservationCategory(s string) (ReservationCategory, bool) {
	switch ReservationCategory(strings.ToLower(s)) {
	case ReservationUpcoming, ReservationActive, ReservationPendingReception, ReservationHistoric:
		return ReservationCategory(strings.ToLower(s)), true
	default:
		return "", false
	}
}

// ReservationSummary is a listing row for one reservation.
type ReservationSummary struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Window      entity.DateWindow `json:"window"`
	DeviceCount int64             `json:"device_count"`

	// DaysUntilEnd is set for active reservations with a known end date;
	// negative values mean the end has passed.
	DaysUntilEnd *int `json:"days_until_end,omitempty"`
}

// BatchFailure records one failed item of a batch operation.
type BatchFailure struct {
	DeviceID uuid.UUID `json:"device_id"`
	Reason   string    `json:"reason"`
}

// BatchResult is the per-item tally of a batch operation. Batches are not
// transactional: partial success is the normal case and is reported
// verbatim, never collapsed into a single error.
type BatchResult struct {
	Succeeded []uuid.UUID    `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// PartialFailure returns a PartialBatchError when any item failed, nil
// otherwise. Callers that want an error value can use this; the tally
// itself is always available.
func (r *BatchResult) PartialFailure() error {
	if r == nil || len(r.Failed) == 0 {
		return nil
	}

	return &PartialBatchError{Failed: r.Failed}
}

// PartialBatchError reports that some items of a batch failed. It carries
// the failed ids with reasons; successes are in the accompanying
// BatchResult.
type PartialBatchError struct {
	Failed []BatchFailure
}

// Error implements the error interface.
func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("%d batch items failed", len(e.Failed))
}

// CheckInPhase names the last completed step of the two-phase check-in.
type CheckInPhase string

const (
	// CheckInAuditWritten means the historic record exists but the device
	// was not returned to the pool. Retrying the check-in resumes here
	// without writing a second record.
	CheckInAuditWritten CheckInPhase = "audit_written"
	// CheckInReassigned means the check-in completed.
	CheckInReassigned CheckInPhase = "reassigned"
)

// CheckInResult reports how far a check-in got and the audit record it
// wrote (or found from an earlier interrupted attempt).
type CheckInResult struct {
	Phase  CheckInPhase           `json:"phase"`
	Record *entity.HistoricRecord `json:"record"`
}

// CreateReservationInput carries the fields for a new client reservation.
// End may be nil for open-ended engagements. DeviceIDs, when present, are
// assigned to the new reservation in the same call.
type CreateReservationInput struct {
	Name      string
	Start     time.Time
	End       *time.Time
	DeviceIDs []uuid.UUID
}

// CreateReservationResult is the created reservation plus the per-device
// assignment tally when devices were supplied.
type CreateReservationResult struct {
	Reservation *entity.Location `json:"reservation"`
	Assignments *BatchResult     `json:"assignments,omitempty"`
}

// CensusGroup is one bucket of the device census.
type CensusGroup struct {
	Count   int      `json:"count"`
	Devices []string `json:"devices"`
}

// DeviceCensus classifies every device by where it currently sits,
// mirroring the operational diagnostic view.
type DeviceCensus struct {
	Pool          CensusGroup `json:"pool"`
	Unprovisioned CensusGroup `json:"unprovisioned"`
	Elsewhere     CensusGroup `json:"elsewhere"`
	Total         int         `json:"total"`
}

// SchedulingUsecase is the engine facade consumed by the UI layer:
// availability queries, reservation listings, the assignment/check-in
// state machine, and reservation lifecycle operations.
type SchedulingUsecase interface {
	// CheckAvailability returns the provisioned devices free over the
	// queried interval.
	CheckAvailability(ctx context.Context, query AvailabilityQuery) ([]*entity.Device, error)

	// ListCandidatesForReservation returns the devices that could still be
	// added to a reservation over its own window.
	ListCandidatesForReservation(ctx context.Context, reservationID uuid.UUID) ([]*entity.Device, error)

	// ListReservations buckets reservations into the given category.
	ListReservations(ctx context.Context, category ReservationCategory) ([]*ReservationSummary, error)

	// Assign moves a device to a location by overwriting its current
	// reference. Assigning a device to its current location is a no-op.
	// Moving a device from a reservation straight to the pool is refused;
	// that path must go through CheckIn so the audit record is written.
	Assign(ctx context.Context, deviceID, locationID uuid.UUID) error

	// AssignMany assigns each device independently and reports a per-item
	// tally. One device's failure never aborts the rest.
	AssignMany(ctx context.Context, deviceIDs []uuid.UUID, locationID uuid.UUID) (*BatchResult, error)

	// CheckIn ends a device's stay at a reservation: first the audit
	// record, then the pool reassignment, in that order. On a phase-2
	// failure the result carries CheckInAuditWritten alongside the error;
	// calling CheckIn again resumes at the reassignment.
	CheckIn(ctx context.Context, deviceID, reservationID uuid.UUID) (*CheckInResult, error)

	// CheckInMany checks in each device independently with a per-item tally.
	CheckInMany(ctx context.Context, deviceIDs []uuid.UUID, reservationID uuid.UUID) (*BatchResult, error)

	// CreateReservation creates a reservation-kind location, optionally
	// assigning devices to it.
	CreateReservation(ctx context.Context, input *CreateReservationInput) (*CreateReservationResult, error)

	// CreatePersonLocation creates a person-kind location for indefinite
	// staff checkouts.
	CreatePersonLocation(ctx context.Context, name string) (*entity.Location, error)

	// TerminateEarly shortens a reservation's window end. It moves no
	// devices; the reservation simply falls into pending reception once
	// the new end has passed.
	TerminateEarly(ctx context.Context, reservationID uuid.UUID, end time.Time) error

	// ListDevicesAtLocation returns the devices currently at a location.
	ListDevicesAtLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Device, error)

	// ListPoolDevices returns the devices currently in the pool.
	ListPoolDevices(ctx context.Context) ([]*entity.Device, error)

	// DeviceCensus classifies all devices by pool / unprovisioned / elsewhere.
	DeviceCensus(ctx context.Context) (*DeviceCensus, error)
}
