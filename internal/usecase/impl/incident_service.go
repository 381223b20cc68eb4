package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gearpool/config"
	"gearpool/internal/domain/entity"
	domainerrors "gearpool/internal/domain/errors"
	"gearpool/internal/domain/repository"
	"gearpool/internal/usecase"

	"github.com/google/uuid"
)

type incidentService struct {
	incidentRepo repository.IncidentRepository
	deviceRepo   repository.DeviceRepository
	retry        config.RetryConfig
}

// NewIncidentService creates a new incident service instance
func NewIncidentService(
	incidentRepo repository.IncidentRepository,
	deviceRepo repository.DeviceRepository,
	cfg *config.Config,
) usecase.IncidentUsecase {
	retry := config.RetryConfig{Attempts: 3, Backoff: 100 * time.Millisecond}
	if cfg.Scheduling != nil && cfg.Scheduling.Retry.Attempts > 0 {
		retry = cfg.Scheduling.Retry
	}

	return &incidentService{
		incidentRepo: incidentRepo,
		deviceRepo:   deviceRepo,
		retry:        retry,
	}
}

// CreateIncident files a new active incident against a device. The
// device's current location is irrelevant and existing incidents don't
// block new ones.
func (s *incidentService) CreateIncident(ctx context.Context, deviceID uuid.UUID, title, notes string) (*entity.Incident, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("incident title must not be empty")
	}

	if _, err := s.deviceRepo.FindDeviceByID(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	incident := &entity.Incident{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Title:     title,
		Notes:     notes,
		CreatedAt: time.Now(),
	}

	if err := s.incidentRepo.CreateIncident(ctx, incident); err != nil {
		return nil, domainerrors.NewExternalWriteError(err, "failed to create incident")
	}

	return incident, nil
}

// ResolveIncident archives an active incident with the same copy-then-
// remove shape as check-in: the resolved copy is written first, then the
// active record is removed. A retry after an interrupted resolve finds
// the existing copy by incident ID and skips straight to the removal.
func (s *incidentService) ResolveIncident(ctx context.Context, incidentID uuid.UUID, resolvedAt time.Time, notes string) (*entity.ResolvedIncident, error) {
	incident, err := s.incidentRepo.FindActiveByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			// Already archived or never existed; either way the caller's
			// target is gone. Not a silent no-op.
			return nil, domainerrors.ErrIncidentNotFound
		}

		return nil, fmt.Errorf("failed to find incident: %w", err)
	}

	if resolvedAt.IsZero() {
		resolvedAt = time.Now()
	}

	resolved := &entity.ResolvedIncident{
		Incident:        *incident,
		ResolvedAt:      resolvedAt,
		ResolutionNotes: notes,
	}

	exists, err := s.incidentRepo.HasResolvedIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check resolved incident: %w", err)
	}
	if !exists {
		if err := s.incidentRepo.CreateResolvedIncident(ctx, resolved); err != nil {
			return nil, domainerrors.NewExternalWriteError(err, "failed to write resolved incident")
		}
	}

	if err := s.withRetry(ctx, func() error {
		return s.incidentRepo.ArchiveIncident(ctx, incidentID)
	}); err != nil {
		return resolved, domainerrors.ErrInconsistentResolve.WithDetails(err.Error())
	}

	return resolved, nil
}

// ListActiveIncidents returns a device's unresolved incidents.
func (s *incidentService) ListActiveIncidents(ctx context.Context, deviceID uuid.UUID) ([]*entity.Incident, error) {
	incidents, err := s.incidentRepo.ListActiveByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}

	return incidents, nil
}

// IncidentSummary returns active and total incident counts for a device.
func (s *incidentService) IncidentSummary(ctx context.Context, deviceID uuid.UUID) (*usecase.IncidentSummary, error) {
	active, err := s.incidentRepo.CountActiveByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active incidents: %w", err)
	}

	resolved, err := s.incidentRepo.CountResolvedByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count resolved incidents: %w", err)
	}

	return &usecase.IncidentSummary{
		Active: active,
		Total:  active + resolved,
	}, nil
}

func (s *incidentService) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < s.retry.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retry.Backoff):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}
