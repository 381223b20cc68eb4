package impl

import (
	"context"
	"testing"

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

type incidentServiceFixtures struct {
	service      usecase.IncidentUsecase
	incidentRepo *mockRepo.MockIncidentRepository
	deviceRepo   *mockRepo.MockDeviceRepository
}

func createTestIncidentService(t *testing.T) incidentServiceFixtures {
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewIncidentService(incidentRepo, deviceRepo, newTestConfig())

	return incidentServiceFixtures{
		service:      service,
		incidentRepo: incidentRepo,
		deviceRepo:   deviceRepo,
	}
}

func TestIncidentService_CreateIncident_Success(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	device := deviceAt("HL-01", newPoolLocation())

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	var created *entity.Incident
	fx.incidentRepo.EXPECT().
		CreateIncident(ctx, mock.AnythingOfType("*entity.Incident")).
		Run(func(_ context.Context, incident *entity.Incident) {
			created = incident
		}).
		Return(nil)

	incident, err := fx.service.CreateIncident(ctx, device.ID, "cracked lens", "left eye, visible scratch")
	assert.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, created, incident)
	assert.Equal(t, device.ID, incident.DeviceID)
	assert.Equal(t, "cracked lens", incident.Title)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.False(t, incident.CreatedAt.IsZero())
}

func TestIncidentService_CreateIncident_EmptyTitle(t *testing.T) {
	fx := createTestIncidentService(t)

	_, err := fx.service.CreateIncident(context.Background(), uuid.New(), "   ", "notes")
	assert.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestIncidentService_CreateIncident_DeviceNotFound(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.CreateIncident(ctx, deviceID, "cracked lens", "")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}

func TestIncidentService_ResolveIncident_Success(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	incident := &entity.Incident{
		ID:        uuid.New(),
		DeviceID:  uuid.New(),
		Title:     "cracked lens",
		CreatedAt: day(-3),
	}
	resolvedAt := day(0)

	fx.incidentRepo.EXPECT().
		FindActiveByID(ctx, incident.ID).
		Return(incident, nil)
	fx.incidentRepo.EXPECT().
		HasResolvedIncident(ctx, incident.ID).
		Return(false, nil)

	var copied *entity.ResolvedIncident
	fx.incidentRepo.EXPECT().
		CreateResolvedIncident(ctx, mock.AnythingOfType("*entity.ResolvedIncident")).
		Run(func(_ context.Context, resolved *entity.ResolvedIncident) {
			copied = resolved
		}).
		Return(nil)
	fx.incidentRepo.EXPECT().
		ArchiveIncident(ctx, incident.ID).
		Return(nil)

	resolved, err := fx.service.ResolveIncident(ctx, incident.ID, resolvedAt, "lens replaced")
	assert.NoError(t, err)
	require.NotNil(t, resolved)
	require.NotNil(t, copied)

	// The resolved copy keeps the original incident ID so a later retry
	// can find it.
	assert.Equal(t, incident.ID, copied.ID)
	assert.Equal(t, resolvedAt, resolved.ResolvedAt)
	assert.Equal(t, "lens replaced", resolved.ResolutionNotes)
}

func TestIncidentService_ResolveIncident_AlreadyArchived(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	incidentID := uuid.New()

	fx.incidentRepo.EXPECT().
		FindActiveByID(ctx, incidentID).
		Return(nil, repository.ErrIncidentNotFound)

	_, err := fx.service.ResolveIncident(ctx, incidentID, day(0), "")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrIncidentNotFound, err)
}

func TestIncidentService_ResolveIncident_ResumesAfterInterruption(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	incident := &entity.Incident{ID: uuid.New(), DeviceID: uuid.New(), Title: "cracked lens"}

	fx.incidentRepo.EXPECT().
		FindActiveByID(ctx, incident.ID).
		Return(incident, nil)
	fx.incidentRepo.EXPECT().
		HasResolvedIncident(ctx, incident.ID).
		Return(true, nil)
	fx.incidentRepo.EXPECT().
		ArchiveIncident(ctx, incident.ID).
		Return(nil)

	// No CreateResolvedIncident expectation: the resumed resolve must not
	// write a second copy.
	resolved, err := fx.service.ResolveIncident(ctx, incident.ID, day(0), "")
	assert.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, incident.ID, resolved.ID)
}

func TestIncidentService_ResolveIncident_ArchiveFailure(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	incident := &entity.Incident{ID: uuid.New(), DeviceID: uuid.New(), Title: "cracked lens"}

	fx.incidentRepo.EXPECT().
		FindActiveByID(ctx, incident.ID).
		Return(incident, nil)
	fx.incidentRepo.EXPECT().
		HasResolvedIncident(ctx, incident.ID).
		Return(false, nil)
	fx.incidentRepo.EXPECT().
		CreateResolvedIncident(ctx, mock.AnythingOfType("*entity.ResolvedIncident")).
		Return(nil)
	fx.incidentRepo.EXPECT().
		ArchiveIncident(ctx, incident.ID).
		Return(errors.New("store unreachable")).
		Times(2) // exhausts the configured retry budget

	resolved, err := fx.service.ResolveIncident(ctx, incident.ID, day(0), "")
	assert.Error(t, err)
	require.NotNil(t, resolved)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "RESOLVE_INCONSISTENT", appErr.ErrorCode())
}

func TestIncidentService_ListActiveIncidents(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	incidents := []*entity.Incident{
		{ID: uuid.New(), DeviceID: deviceID, Title: "cracked lens"},
		{ID: uuid.New(), DeviceID: deviceID, Title: "missing strap"},
	}

	fx.incidentRepo.EXPECT().
		ListActiveByDevice(ctx, deviceID).
		Return(incidents, nil)

	got, err := fx.service.ListActiveIncidents(ctx, deviceID)
	assert.NoError(t, err)
	assert.Equal(t, incidents, got)
}

func TestIncidentService_IncidentSummary(t *testing.T) {
	fx := createTestIncidentService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.incidentRepo.EXPECT().
		CountActiveByDevice(ctx, deviceID).
		Return(int64(2), nil)
	fx.incidentRepo.EXPECT().
		CountResolvedByDevice(ctx, deviceID).
		Return(int64(5), nil)

	summary, err := fx.service.IncidentSummary(ctx, deviceID)
	assert.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(2), summary.Active)
	assert.Equal(t, int64(7), summary.Total)
}
