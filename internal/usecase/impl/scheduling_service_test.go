package impl

import (
	"context"
	"testing"
	"time"

	"gearpool/config"
	"gearpool/internal/domain/entity"
	domainerrors "gearpool/internal/domain/errors"
	"gearpool/internal/domain/repository"
	mockRepo "gearpool/internal/mocks/repository"
	"gearpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulingServiceFixtures struct {
	service      usecase.SchedulingUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	locationRepo *mockRepo.MockLocationRepository
	auditRepo    *mockRepo.MockAuditRepository
}

func createTestSchedulingService(t *testing.T) schedulingServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)
	service := NewSchedulingService(deviceRepo, locationRepo, auditRepo, newTestConfig())

	return schedulingServiceFixtures{
		service:      service,
		deviceRepo:   deviceRepo,
		locationRepo: locationRepo,
		auditRepo:    auditRepo,
	}
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scheduling: &config.SchedulingConfig{
			PoolName:           "Office",
			HistoricWindowDays: 30,
			Retry:              config.RetryConfig{Attempts: 2, Backoff: time.Millisecond},
		},
	}
}

// day returns midnight today shifted by the given number of days.
func day(offset int) time.Time {
	now := time.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, offset)
}

func dayPtr(offset int) *time.Time {
	d := day(offset)

	return &d
}

func newPoolLocation() *entity.Location {
	return &entity.Location{ID: uuid.New(), Name: "Office", Kind: entity.LocationPool}
}

func newReservation(name string, start, end *time.Time) *entity.Location {
	return &entity.Location{
		ID:     uuid.New(),
		Name:   name,
		Kind:   entity.LocationReservation,
		Window: entity.DateWindow{Start: start, End: end},
	}
}

func deviceAt(name string, location *entity.Location) *entity.Device {
	return &entity.Device{
		ID:       uuid.New(),
		Name:     name,
		Category: "Quest 3",
		Location: location,
	}
}

func TestSchedulingService_CheckAvailability_InvalidRange(t *testing.T) {
	fx := createTestSchedulingService(t)

	_, err := fx.service.CheckAvailability(context.Background(), usecase.AvailabilityQuery{
		Start: day(5),
		End:   day(1),
	})
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidRange, err)
}

func TestSchedulingService_CheckAvailability_FiltersBusyAndUnprovisioned(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	busy := newReservation("Acme Corp", dayPtr(0), dayPtr(10))

	free := deviceAt("HL-01", pool)
	taken := deviceAt("HL-02", busy)
	unprovisioned := &entity.Device{ID: uuid.New(), Name: "HL-03"}

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return([]*entity.Device{free, taken, unprovisioned}, nil)

	devices, err := fx.service.CheckAvailability(ctx, usecase.AvailabilityQuery{
		Start: day(2),
		End:   day(4),
	})
	assert.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, free.ID, devices[0].ID)
}

func TestSchedulingService_CheckAvailability_ExcludePersonHeld(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	person := &entity.Location{ID: uuid.New(), Name: "Dana", Kind: entity.LocationPerson}
	held := deviceAt("HL-01", person)
	pooled := deviceAt("HL-02", newPoolLocation())

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return([]*entity.Device{held, pooled}, nil)

	devices, err := fx.service.CheckAvailability(ctx, usecase.AvailabilityQuery{
		Start:             day(1),
		End:               day(2),
		ExcludePersonHeld: true,
	})
	assert.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, pooled.ID, devices[0].ID)
}

func TestSchedulingService_Assign_Success(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(1), dayPtr(5))
	device := deviceAt("HL-01", newPoolLocation())

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, reservation.ID).
		Return(nil)

	err := fx.service.Assign(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
}

func TestSchedulingService_Assign_SameLocationIsNoOp(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(1), dayPtr(5))
	device := deviceAt("HL-01", reservation)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	// No UpdateLocation expectation: the write must not happen.
	err := fx.service.Assign(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
}

func TestSchedulingService_Assign_ReservationToPoolRefused(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", reservation)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, pool.ID).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	err := fx.service.Assign(ctx, device.ID, pool.ID)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrCheckInRequired, err)
}

func TestSchedulingService_Assign_DeviceNotFound(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(1), dayPtr(5))
	deviceID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.Assign(ctx, deviceID, reservation.ID)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}

func TestSchedulingService_AssignMany_PartialTally(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(1), dayPtr(5))
	good := deviceAt("HL-01", newPoolLocation())
	missingID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, good.ID).
		Return(good, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, good.ID, reservation.ID).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, missingID).
		Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.AssignMany(ctx, []uuid.UUID{good.ID, missingID}, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []uuid.UUID{good.ID}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, missingID, result.Failed[0].DeviceID)
	assert.Error(t, result.PartialFailure())
}

func TestSchedulingService_CheckIn_Success(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", reservation)
	device.SerialNumber = "SN-1234"

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(nil, repository.ErrRecordNotFound)

	var written *entity.HistoricRecord
	fx.auditRepo.EXPECT().
		AppendRecord(ctx, mock.AnythingOfType("*entity.HistoricRecord")).
		Run(func(_ context.Context, record *entity.HistoricRecord) {
			written = record
		}).
		Return(nil)
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, pool.ID).
		Return(nil)

	result, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, usecase.CheckInReassigned, result.Phase)

	// The audit snapshot must capture the device as it sat at the reservation.
	require.NotNil(t, written)
	assert.Equal(t, device.ID, written.DeviceID)
	assert.Equal(t, reservation.ID, written.LocationID)
	assert.Equal(t, "HL-01", written.DeviceName)
	assert.Equal(t, "SN-1234", written.SerialNumber)
	assert.Equal(t, reservation.Window.Start, written.WindowStart)
	assert.Equal(t, reservation.Window.End, written.WindowEnd)
}

func TestSchedulingService_CheckIn_Phase2FailureKeepsRecord(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", reservation)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(nil, repository.ErrRecordNotFound)
	fx.auditRepo.EXPECT().
		AppendRecord(ctx, mock.AnythingOfType("*entity.HistoricRecord")).
		Return(nil)
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, pool.ID).
		Return(errors.New("store unreachable")).
		Times(2) // exhausts the configured retry budget

	result, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, usecase.CheckInAuditWritten, result.Phase)
	assert.NotNil(t, result.Record)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "CHECK_IN_INCONSISTENT", appErr.ErrorCode())
}

func TestSchedulingService_CheckIn_ResumesAfterInterruption(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", reservation)

	existing := entity.SnapshotDevice(device, reservation, day(0))

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(existing, nil)
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, pool.ID).
		Return(nil)

	// No AppendRecord expectation: the resumed check-in must not
	// duplicate the audit record.
	result, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, usecase.CheckInReassigned, result.Phase)
	assert.Equal(t, existing.ID, result.Record.ID)
}

func TestSchedulingService_CheckIn_AlreadyCompletedIsIdempotent(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", newPoolLocation())

	existing := &entity.HistoricRecord{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		LocationID: reservation.ID,
		CheckInAt:  day(-1),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(existing, nil)

	result, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, usecase.CheckInReassigned, result.Phase)
	assert.Equal(t, existing.ID, result.Record.ID)
}

func TestSchedulingService_CheckIn_NotAssigned(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", newPoolLocation())

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(nil, repository.ErrRecordNotFound)

	_, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrDeviceNotAssigned, err)
}

func TestSchedulingService_CheckIn_IgnoresEarlierStayRecord(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	device := deviceAt("HL-01", reservation)

	// Record from a previous stay, before this window began. It must not
	// suppress the new audit write.
	stale := &entity.HistoricRecord{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		LocationID: reservation.ID,
		CheckInAt:  day(-20),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, device.ID, reservation.ID).
		Return(stale, nil)
	fx.auditRepo.EXPECT().
		AppendRecord(ctx, mock.AnythingOfType("*entity.HistoricRecord")).
		Return(nil)
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, pool.ID).
		Return(nil)

	result, err := fx.service.CheckIn(ctx, device.ID, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEqual(t, stale.ID, result.Record.ID)
}

func TestSchedulingService_CheckInMany_PartialTally(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))
	assigned := deviceAt("HL-01", reservation)
	elsewhere := deviceAt("HL-02", newPoolLocation())

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, assigned.ID).
		Return(assigned, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, assigned.ID, reservation.ID).
		Return(nil, repository.ErrRecordNotFound)
	fx.auditRepo.EXPECT().
		AppendRecord(ctx, mock.AnythingOfType("*entity.HistoricRecord")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, assigned.ID, pool.ID).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, elsewhere.ID).
		Return(elsewhere, nil)
	fx.auditRepo.EXPECT().
		LatestRecord(ctx, elsewhere.ID, reservation.ID).
		Return(nil, repository.ErrRecordNotFound)

	result, err := fx.service.CheckInMany(ctx, []uuid.UUID{assigned.ID, elsewhere.ID}, reservation.ID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []uuid.UUID{assigned.ID}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, elsewhere.ID, result.Failed[0].DeviceID)
}

func TestSchedulingService_CreateReservation_EmptyName(t *testing.T) {
	fx := createTestSchedulingService(t)

	_, err := fx.service.CreateReservation(context.Background(), &usecase.CreateReservationInput{
		Name:  "  ",
		Start: day(1),
	})
	assert.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSchedulingService_CreateReservation_InvalidRange(t *testing.T) {
	fx := createTestSchedulingService(t)

	_, err := fx.service.CreateReservation(context.Background(), &usecase.CreateReservationInput{
		Name:  "Acme Corp",
		Start: day(10),
		End:   dayPtr(5),
	})
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidRange, err)
}

func TestSchedulingService_CreateReservation_WithDevices(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	device := deviceAt("HL-01", newPoolLocation())

	var created *entity.Location
	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(_ context.Context, location *entity.Location) {
			created = location
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateLocation(ctx, device.ID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	result, err := fx.service.CreateReservation(ctx, &usecase.CreateReservationInput{
		Name:      "Acme Corp",
		Start:     day(1),
		End:       dayPtr(5),
		DeviceIDs: []uuid.UUID{device.ID},
	})
	assert.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, created)
	assert.Equal(t, entity.LocationReservation, created.Kind)
	assert.Equal(t, "Acme Corp", created.Name)
	require.NotNil(t, result.Assignments)
	assert.Equal(t, []uuid.UUID{device.ID}, result.Assignments.Succeeded)
	assert.Empty(t, result.Assignments.Failed)
}

func TestSchedulingService_CreatePersonLocation(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreatePersonLocation(ctx, "Dana")
	assert.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, entity.LocationPerson, location.Kind)
	assert.True(t, location.Window.IsZero())
}

func TestSchedulingService_TerminateEarly_BeforeStart(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(0), dayPtr(30))

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)

	err := fx.service.TerminateEarly(ctx, reservation.ID, day(-1))
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidRange, err)
}

func TestSchedulingService_TerminateEarly_Success(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(0), dayPtr(30))
	newEnd := day(3)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.locationRepo.EXPECT().
		UpdateWindowEnd(ctx, reservation.ID, newEnd).
		Return(nil)

	err := fx.service.TerminateEarly(ctx, reservation.ID, newEnd)
	assert.NoError(t, err)
}

func TestSchedulingService_TerminateEarly_NotAReservation(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, pool.ID).
		Return(pool, nil)

	err := fx.service.TerminateEarly(ctx, pool.ID, day(3))
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrReservationNotFound, err)
}

func TestSchedulingService_ListReservations_Active(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	endingSoon := newReservation("Ending Soon", dayPtr(-5), dayPtr(2))
	endingLater := newReservation("Ending Later", dayPtr(-5), dayPtr(9))
	openEnded := newReservation("Open Ended", dayPtr(-5), nil)
	upcoming := newReservation("Future", dayPtr(3), dayPtr(10))
	ended := newReservation("Done", dayPtr(-20), dayPtr(-10))

	fx.locationRepo.EXPECT().
		ListLocationsByKind(ctx, entity.LocationReservation).
		Return([]*entity.Location{openEnded, ended, endingLater, upcoming, endingSoon}, nil)
	fx.deviceRepo.EXPECT().
		CountDevicesByLocation(ctx).
		Return(map[uuid.UUID]int64{endingSoon.ID: 2, endingLater.ID: 1}, nil)

	summaries, err := fx.service.ListReservations(ctx, usecase.ReservationActive)
	assert.NoError(t, err)
	require.Len(t, summaries, 3)

	// Soonest-expiring first, open-ended last.
	assert.Equal(t, "Ending Soon", summaries[0].Name)
	assert.Equal(t, "Ending Later", summaries[1].Name)
	assert.Equal(t, "Open Ended", summaries[2].Name)

	require.NotNil(t, summaries[0].DaysUntilEnd)
	assert.Equal(t, 2, *summaries[0].DaysUntilEnd)
	assert.Nil(t, summaries[2].DaysUntilEnd)
	assert.Equal(t, int64(2), summaries[0].DeviceCount)
}

func TestSchedulingService_ListReservations_PendingReception(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	overdue := newReservation("Overdue", dayPtr(-30), dayPtr(-10))
	justEnded := newReservation("Just Ended", dayPtr(-10), dayPtr(-1))
	cleared := newReservation("Cleared", dayPtr(-30), dayPtr(-10))
	active := newReservation("Active", dayPtr(-5), dayPtr(5))

	fx.locationRepo.EXPECT().
		ListLocationsByKind(ctx, entity.LocationReservation).
		Return([]*entity.Location{justEnded, cleared, active, overdue}, nil)
	fx.deviceRepo.EXPECT().
		CountDevicesByLocation(ctx).
		Return(map[uuid.UUID]int64{overdue.ID: 3, justEnded.ID: 1, active.ID: 2}, nil)

	summaries, err := fx.service.ListReservations(ctx, usecase.ReservationPendingReception)
	assert.NoError(t, err)
	require.Len(t, summaries, 2)

	// Longest-overdue first.
	assert.Equal(t, "Overdue", summaries[0].Name)
	assert.Equal(t, "Just Ended", summaries[1].Name)
}

func TestSchedulingService_ListReservations_Historic(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	recent := newReservation("Recent", dayPtr(-20), dayPtr(-10))
	forgotten := newReservation("Forgotten", dayPtr(-90), dayPtr(-60))
	stillLoaded := newReservation("Still Loaded", dayPtr(-20), dayPtr(-10))

	fx.locationRepo.EXPECT().
		ListLocationsByKind(ctx, entity.LocationReservation).
		Return([]*entity.Location{recent, forgotten, stillLoaded}, nil)
	fx.deviceRepo.EXPECT().
		CountDevicesByLocation(ctx).
		Return(map[uuid.UUID]int64{stillLoaded.ID: 1}, nil)
	fx.auditRepo.EXPECT().
		LocationIDsWithRecordsSince(ctx, mock.AnythingOfType("time.Time")).
		Return([]uuid.UUID{recent.ID}, nil)

	summaries, err := fx.service.ListReservations(ctx, usecase.ReservationHistoric)
	assert.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Recent", summaries[0].Name)
}

func TestSchedulingService_ListReservations_Upcoming(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	near := newReservation("Near", dayPtr(2), dayPtr(10))
	far := newReservation("Far", dayPtr(20), nil)
	current := newReservation("Current", dayPtr(0), dayPtr(5))

	fx.locationRepo.EXPECT().
		ListLocationsByKind(ctx, entity.LocationReservation).
		Return([]*entity.Location{far, current, near}, nil)
	fx.deviceRepo.EXPECT().
		CountDevicesByLocation(ctx).
		Return(map[uuid.UUID]int64{}, nil)

	summaries, err := fx.service.ListReservations(ctx, usecase.ReservationUpcoming)
	assert.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Near", summaries[0].Name)
	assert.Equal(t, "Far", summaries[1].Name)
}

func TestSchedulingService_ListPoolDevices(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	device := deviceAt("HL-01", pool)

	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		ListDevicesByLocation(ctx, pool.ID).
		Return([]*entity.Device{device}, nil)

	devices, err := fx.service.ListPoolDevices(ctx)
	assert.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, device.ID, devices[0].ID)
}

func TestSchedulingService_ListPoolDevices_PoolMissing(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.ListPoolDevices(ctx)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrPoolNotFound, err)
}

func TestSchedulingService_DeviceCensus(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	pool := newPoolLocation()
	reservation := newReservation("Acme Corp", dayPtr(-5), dayPtr(5))

	pooled := deviceAt("B-pooled", pool)
	pooledToo := deviceAt("A-pooled", pool)
	out := deviceAt("C-out", reservation)
	unprovisioned := &entity.Device{ID: uuid.New(), Name: "D-new"}

	fx.locationRepo.EXPECT().
		FindLocationByName(ctx, "Office", entity.LocationPool).
		Return(pool, nil)
	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return([]*entity.Device{pooled, out, unprovisioned, pooledToo}, nil)

	census, err := fx.service.DeviceCensus(ctx)
	assert.NoError(t, err)
	require.NotNil(t, census)
	assert.Equal(t, 4, census.Total)
	assert.Equal(t, []string{"A-pooled", "B-pooled"}, census.Pool.Devices)
	assert.Equal(t, []string{"D-new"}, census.Unprovisioned.Devices)
	assert.Equal(t, []string{"C-out"}, census.Elsewhere.Devices)
	assert.Equal(t, 2, census.Pool.Count)
}

func TestSchedulingService_ListCandidatesForReservation(t *testing.T) {
	fx := createTestSchedulingService(t)

	ctx := context.Background()
	reservation := newReservation("Acme Corp", dayPtr(1), dayPtr(10))
	other := newReservation("Rival Corp", dayPtr(5), dayPtr(15))

	free := deviceAt("HL-01", newPoolLocation())
	clashing := deviceAt("HL-02", other)
	alreadyThere := deviceAt("HL-03", reservation)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, reservation.ID).
		Return(reservation, nil)
	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return([]*entity.Device{free, clashing, alreadyThere}, nil)

	devices, err := fx.service.ListCandidatesForReservation(ctx, reservation.ID)
	assert.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, free.ID, devices[0].ID)
}
