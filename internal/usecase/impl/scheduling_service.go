// Package impl contains the concrete use case services of the scheduling
// engine.
package impl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gearpool/config"
	"gearpool/internal/domain/availability"
	"gearpool/internal/domain/entity"
	domainerrors "gearpool/internal/domain/errors"
	"gearpool/internal/domain/repository"
	"gearpool/internal/usecase"

	"github.com/google/uuid"
)

type schedulingService struct {
	deviceRepo   repository.DeviceRepository
	locationRepo repository.LocationRepository
	auditRepo    repository.AuditRepository
	cfg          *config.SchedulingConfig
}

// NewSchedulingService creates a new scheduling service instance
func NewSchedulingService(
	deviceRepo repository.DeviceRepository,
	locationRepo repository.LocationRepository,
	auditRepo repository.AuditRepository,
	cfg *config.Config,
) usecase.SchedulingUsecase {
	scheduling := cfg.Scheduling
	if scheduling == nil {
		scheduling = &config.SchedulingConfig{
			PoolName:           "Office",
			HistoricWindowDays: 30,
			Retry:              config.RetryConfig{Attempts: 3, Backoff: 100 * time.Millisecond},
		}
	}

	return &schedulingService{
		deviceRepo:   deviceRepo,
		locationRepo: locationRepo,
		auditRepo:    auditRepo,
		cfg:          scheduling,
	}
}

// CheckAvailability returns the provisioned devices free over the queried interval.
func (s *schedulingService) CheckAvailability(ctx context.Context, query usecase.AvailabilityQuery) ([]*entity.Device, error) {
	if query.Start.After(query.End) {
		return nil, domainerrors.ErrInvalidRange
	}

	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return availability.Filter(devices, query.Start, query.End, availability.Options{
		RequireProvisioned: true,
		ExcludePersonHeld:  query.ExcludePersonHeld,
		Category:           query.Category,
	}), nil
}

// ListCandidatesForReservation returns the devices that could still be
// added to a reservation over its own window.
func (s *schedulingService) ListCandidatesForReservation(ctx context.Context, reservationID uuid.UUID) ([]*entity.Device, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return availability.CandidatesForReservation(devices, reservation), nil
}

// Assign overwrites the device's current location reference.
func (s *schedulingService) Assign(ctx context.Context, deviceID, locationID uuid.UUID) error {
	location, err := s.findLocation(ctx, locationID)
	if err != nil {
		return err
	}

	return s.assignLoaded(ctx, deviceID, location)
}

// assignLoaded assigns one device to an already-loaded location.
func (s *schedulingService) assignLoaded(ctx context.Context, deviceID uuid.UUID, location *entity.Location) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	// Idempotent: re-assigning to the current location changes nothing
	// and writes no audit record.
	if device.AtLocation(location.ID) {
		return nil
	}

	// Reservation -> Pool without a check-in would lose the audit record.
	if device.Location.IsReservation() && location.Kind == entity.LocationPool {
		return domainerrors.ErrCheckInRequired
	}

	// Last write wins on concurrent assigns: the record store has no
	// concurrency token, and that limitation is accepted.
	if err := s.deviceRepo.UpdateLocation(ctx, device.ID, location.ID); err != nil {
		return domainerrors.NewExternalWriteError(err, "failed to assign device")
	}

	return nil
}

// AssignMany assigns each device independently and reports a per-item tally.
func (s *schedulingService) AssignMany(ctx context.Context, deviceIDs []uuid.UUID, locationID uuid.UUID) (*usecase.BatchResult, error) {
	location, err := s.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return s.assignManyLoaded(ctx, deviceIDs, location), nil
}

func (s *schedulingService) assignManyLoaded(ctx context.Context, deviceIDs []uuid.UUID, location *entity.Location) *usecase.BatchResult {
	result := &usecase.BatchResult{}
	for _, id := range deviceIDs {
		if err := s.assignLoaded(ctx, id, location); err != nil {
			result.Failed = append(result.Failed, usecase.BatchFailure{DeviceID: id, Reason: err.Error()})

			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result
}

// CheckIn ends a device's stay at a reservation. The audit record is
// written before the pool reassignment; a failure in between is surfaced
// as ErrInconsistentCheckIn and a later retry resumes at the reassignment.
func (s *schedulingService) CheckIn(ctx context.Context, deviceID, reservationID uuid.UUID) (*usecase.CheckInResult, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	record, err := s.currentStayRecord(ctx, device, reservation)
	if err != nil {
		return nil, err
	}

	if !device.AtLocation(reservation.ID) {
		if record != nil {
			// The audit record exists and the device already left the
			// reservation: a previous check-in completed after the caller
			// stopped observing it.
			return &usecase.CheckInResult{Phase: usecase.CheckInReassigned, Record: record}, nil
		}

		return nil, domainerrors.ErrDeviceNotAssigned
	}

	if record == nil {
		record = entity.SnapshotDevice(device, reservation, time.Now())
		if err := s.auditRepo.AppendRecord(ctx, record); err != nil {
			// Phase 1 failed: nothing was written, the device still shows
			// as out, and the caller may simply retry the whole check-in.
			return nil, domainerrors.NewExternalWriteError(err, "failed to append audit record")
		}
	}

	pool, err := s.poolLocation(ctx)
	if err != nil {
		return &usecase.CheckInResult{Phase: usecase.CheckInAuditWritten, Record: record},
			domainerrors.ErrInconsistentCheckIn.WithDetails(err.Error())
	}

	if err := s.withRetry(ctx, func() error {
		return s.deviceRepo.UpdateLocation(ctx, device.ID, pool.ID)
	}); err != nil {
		return &usecase.CheckInResult{Phase: usecase.CheckInAuditWritten, Record: record},
			domainerrors.ErrInconsistentCheckIn.WithDetails(err.Error())
	}

	return &usecase.CheckInResult{Phase: usecase.CheckInReassigned, Record: record}, nil
}

// currentStayRecord finds an audit record already written for the
// device's current stay at the reservation, if any. Records from an
// earlier stay (before the reservation's window start) don't count.
func (s *schedulingService) currentStayRecord(ctx context.Context, device *entity.Device, reservation *entity.Location) (*entity.HistoricRecord, error) {
	record, err := s.auditRepo.LatestRecord(ctx, device.ID, reservation.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to look up audit record: %w", err)
	}

	if reservation.Window.Start != nil && record.CheckInAt.Before(*reservation.Window.Start) {
		return nil, nil
	}

	return record, nil
}

// CheckInMany checks in each device independently with a per-item tally.
func (s *schedulingService) CheckInMany(ctx context.Context, deviceIDs []uuid.UUID, reservationID uuid.UUID) (*usecase.BatchResult, error) {
	if _, err := s.findReservation(ctx, reservationID); err != nil {
		return nil, err
	}

	result := &usecase.BatchResult{}
	for _, id := range deviceIDs {
		if _, err := s.CheckIn(ctx, id, reservationID); err != nil {
			result.Failed = append(result.Failed, usecase.BatchFailure{DeviceID: id, Reason: err.Error()})

			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}

// CreateReservation creates a reservation-kind location, optionally
// assigning devices to it in the same call.
func (s *schedulingService) CreateReservation(ctx context.Context, input *usecase.CreateReservationInput) (*usecase.CreateReservationResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reservation name must not be empty")
	}

	start := input.Start
	if input.End != nil && start.After(*input.End) {
		return nil, domainerrors.ErrInvalidRange
	}

	reservation := &entity.Location{
		ID:     uuid.New(),
		Name:   input.Name,
		Kind:   entity.LocationReservation,
		Window: entity.DateWindow{Start: &start, End: input.End},
	}

	if err := s.locationRepo.CreateLocation(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrDuplicateLocation) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a reservation with this name already exists")
		}

		return nil, domainerrors.NewExternalWriteError(err, "failed to create reservation")
	}

	result := &usecase.CreateReservationResult{Reservation: reservation}
	if len(input.DeviceIDs) > 0 {
		result.Assignments = s.assignManyLoaded(ctx, input.DeviceIDs, reservation)
	}

	return result, nil
}

// CreatePersonLocation creates a person-kind location for indefinite
// staff checkouts.
func (s *schedulingService) CreatePersonLocation(ctx context.Context, name string) (*entity.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location name must not be empty")
	}

	location := &entity.Location{
		ID:   uuid.New(),
		Name: name,
		Kind: entity.LocationPerson,
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrDuplicateLocation) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a person location with this name already exists")
		}

		return nil, domainerrors.NewExternalWriteError(err, "failed to create person location")
	}

	return location, nil
}

// TerminateEarly shortens a reservation's window end without moving devices.
func (s *schedulingService) TerminateEarly(ctx context.Context, reservationID uuid.UUID, end time.Time) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if reservation.Window.Start != nil && end.Before(*reservation.Window.Start) {
		return domainerrors.ErrInvalidRange
	}

	if err := s.locationRepo.UpdateWindowEnd(ctx, reservation.ID, end); err != nil {
		return domainerrors.NewExternalWriteError(err, "failed to terminate reservation")
	}

	return nil
}

// ListReservations buckets reservations into the requested category,
// relative to today.
func (s *schedulingService) ListReservations(ctx context.Context, category usecase.ReservationCategory) ([]*usecase.ReservationSummary, error) {
	reservations, err := s.locationRepo.ListLocationsByKind(ctx, entity.LocationReservation)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	counts, err := s.deviceRepo.CountDevicesByLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count devices by location: %w", err)
	}

	today := startOfDay(time.Now())

	var recentAudit map[uuid.UUID]struct{}
	if category == usecase.ReservationHistoric {
		since := today.AddDate(0, 0, -s.cfg.HistoricWindowDays)
		ids, err := s.auditRepo.LocationIDsWithRecordsSince(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to list recent audit locations: %w", err)
		}
		recentAudit = make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			recentAudit[id] = struct{}{}
		}
	}

	summaries := make([]*usecase.ReservationSummary, 0, len(reservations))
	for _, r := range reservations {
		count := counts[r.ID]
		if !matchesCategory(r, count, today, category, recentAudit) {
			continue
		}

		summary := &usecase.ReservationSummary{
			ID:          r.ID,
			Name:        r.Name,
			Window:      r.Window,
			DeviceCount: count,
		}
		if category == usecase.ReservationActive && r.Window.End != nil {
			days := daysBetween(today, *r.Window.End)
			summary.DaysUntilEnd = &days
		}
		summaries = append(summaries, summary)
	}

	sortSummaries(summaries, category)

	return summaries, nil
}

func matchesCategory(r *entity.Location, count int64, today time.Time, category usecase.ReservationCategory, recentAudit map[uuid.UUID]struct{}) bool {
	start, end := r.Window.Start, r.Window.End

	switch category {
	case usecase.ReservationUpcoming:
		return start != nil && start.After(today)
	case usecase.ReservationActive:
		started := start == nil || !start.After(today)
		notEnded := end == nil || !end.Before(today)

		return started && notEnded
	case usecase.ReservationPendingReception:
		return end != nil && end.Before(today) && count > 0
	case usecase.ReservationHistoric:
		if end == nil || !end.Before(today) || count != 0 {
			return false
		}
		_, ok := recentAudit[r.ID]

		return ok
	default:
		return false
	}
}

// sortSummaries orders the categories that drive operational urgency:
// active by soonest-expiring first, pending reception by longest-overdue
// first, upcoming by start date.
func sortSummaries(summaries []*usecase.ReservationSummary, category usecase.ReservationCategory) {
	switch category {
	case usecase.ReservationActive:
		sort.SliceStable(summaries, func(i, j int) bool {
			di, dj := summaries[i].DaysUntilEnd, summaries[j].DaysUntilEnd
			if di == nil {
				return false // open-ended reservations sort last
			}
			if dj == nil {
				return true
			}

			return *di < *dj
		})
	case usecase.ReservationPendingReception:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Window.End.Before(*summaries[j].Window.End)
		})
	case usecase.ReservationUpcoming:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Window.Start.Before(*summaries[j].Window.Start)
		})
	}
}

// ListDevicesAtLocation returns the devices currently at a location.
func (s *schedulingService) ListDevicesAtLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Device, error) {
	if _, err := s.findLocation(ctx, locationID); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListDevicesByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices by location: %w", err)
	}

	return devices, nil
}

// ListPoolDevices returns the devices currently in the pool.
func (s *schedulingService) ListPoolDevices(ctx context.Context) ([]*entity.Device, error) {
	pool, err := s.poolLocation(ctx)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListDevicesByLocation(ctx, pool.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool devices: %w", err)
	}

	return devices, nil
}

// DeviceCensus classifies every device by where it currently sits.
func (s *schedulingService) DeviceCensus(ctx context.Context) (*usecase.DeviceCensus, error) {
	pool, err := s.poolLocation(ctx)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	census := &usecase.DeviceCensus{Total: len(devices)}
	for _, d := range devices {
		switch {
		case d.AtLocation(pool.ID):
			census.Pool.Devices = append(census.Pool.Devices, d.Name)
		case !d.Provisioned():
			census.Unprovisioned.Devices = append(census.Unprovisioned.Devices, d.Name)
		default:
			census.Elsewhere.Devices = append(census.Elsewhere.Devices, d.Name)
		}
	}
	sort.Strings(census.Pool.Devices)
	sort.Strings(census.Unprovisioned.Devices)
	sort.Strings(census.Elsewhere.Devices)
	census.Pool.Count = len(census.Pool.Devices)
	census.Unprovisioned.Count = len(census.Unprovisioned.Devices)
	census.Elsewhere.Count = len(census.Elsewhere.Devices)

	return census, nil
}

// --- lookups ---

func (s *schedulingService) findDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	return device, nil
}

func (s *schedulingService) findLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return location, nil
}

func (s *schedulingService) findReservation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.findLocation(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, err
	}

	if !location.IsReservation() {
		return nil, domainerrors.ErrReservationNotFound
	}

	return location, nil
}

func (s *schedulingService) poolLocation(ctx context.Context) (*entity.Location, error) {
	pool, err := s.locationRepo.FindLocationByName(ctx, s.cfg.PoolName, entity.LocationPool)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrPoolNotFound
		}

		return nil, fmt.Errorf("failed to find pool location: %w", err)
	}

	return pool, nil
}

// withRetry runs fn with the configured bounded retry policy.
func (s *schedulingService) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < s.cfg.Retry.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.cfg.Retry.Backoff):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)).Hours() / 24)
}
