package postgres

import (
	"context"

	"gearpool/internal/domain/entity"
	"gearpool/internal/domain/repository"
	"gearpool/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// incidentRepository implements the repository.IncidentRepository interface.
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository is the constructor for incidentRepository.
func NewIncidentRepository(db *gorm.DB) repository.IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}

// CreateIncident appends a new incident to the active collection.
func (repo *incidentRepository) CreateIncident(ctx context.Context, incident *entity.Incident) error {
	incidentM := fromIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Create(incidentM).Error; err != nil {
		return errors.Wrap(err, "failed to create incident")
	}

	incident.ID = incidentM.ID
	incident.CreatedAt = incidentM.CreatedAt

	return nil
}

// FindActiveByID retrieves an active incident by ID.
func (repo *incidentRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	var incidentM model.IncidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find incident by ID")
	}

	return toIncidentDomain(&incidentM), nil
}

// ListActiveByDevice retrieves the active incidents for a device.
func (repo *incidentRepository) ListActiveByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Incident, error) {
	var incidentModels []*model.IncidentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list incidents by device")
	}

	incidents := make([]*entity.Incident, 0, len(incidentModels))
	for _, incidentM := range incidentModels {
		incidents = append(incidents, toIncidentDomain(incidentM))
	}

	return incidents, nil
}

// CountActiveByDevice counts the active incidents for a device.
func (repo *incidentRepository) CountActiveByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active incidents")
	}

	return count, nil
}

// CountResolvedByDevice counts the resolved incidents for a device.
func (repo *incidentRepository) CountResolvedByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ResolvedIncidentModel{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count resolved incidents")
	}

	return count, nil
}

// CreateResolvedIncident writes the resolved copy of an incident. The
// copy keeps the original incident ID; a duplicate-key conflict means a
// previous interrupted resolve already wrote it, which is fine.
func (repo *incidentRepository) CreateResolvedIncident(ctx context.Context, incident *entity.ResolvedIncident) error {
	resolvedM := fromResolvedIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Create(resolvedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return errors.Wrap(err, "failed to create resolved incident")
	}

	return nil
}

// HasResolvedIncident reports whether a resolved copy already exists for
// the given incident ID.
func (repo *incidentRepository) HasResolvedIncident(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ResolvedIncidentModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check resolved incident")
	}

	return count > 0, nil
}

// ArchiveIncident removes an incident from the active collection.
func (repo *incidentRepository) ArchiveIncident(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IncidentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive incident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIncidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIncidentDomain converts a GORM IncidentModel to a domain Incident entity.
func toIncidentDomain(data *model.IncidentModel) *entity.Incident {
	if data == nil {
		return nil
	}

	return &entity.Incident{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Title:     data.Title,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

// fromIncidentDomain converts a domain Incident entity to a GORM IncidentModel.
func fromIncidentDomain(data *entity.Incident) *model.IncidentModel {
	if data == nil {
		return nil
	}

	return &model.IncidentModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Title:     data.Title,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

// fromResolvedIncidentDomain converts a domain ResolvedIncident entity to
// a GORM ResolvedIncidentModel.
func fromResolvedIncidentDomain(data *entity.ResolvedIncident) *model.ResolvedIncidentModel {
	if data == nil {
		return nil
	}

	return &model.ResolvedIncidentModel{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		Title:           data.Title,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		ResolvedAt:      data.ResolvedAt,
		ResolutionNotes: data.ResolutionNotes,
	}
}
