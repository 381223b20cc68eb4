package postgres

import (
	"context"
	"time"

	"gearpool/internal/domain/entity"
	"gearpool/internal/domain/repository"
	"gearpool/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
// The historic_records table is append-only: this repository issues
// inserts and reads, never updates or deletes.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// AppendRecord writes a new historic record.
func (repo *auditRepository) AppendRecord(ctx context.Context, record *entity.HistoricRecord) error {
	recordM := fromHistoricRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to append historic record")
	}

	return nil
}

// LatestRecord retrieves the most recent record for a device at a location.
func (repo *auditRepository) LatestRecord(ctx context.Context, deviceID, locationID uuid.UUID) (*entity.HistoricRecord, error) {
	var recordM model.HistoricRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND location_id = ?", deviceID, locationID).
		Order("check_in_at DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest historic record")
	}

	return toHistoricRecordDomain(&recordM), nil
}

// ListRecordsForDevice retrieves a device's check-in history, newest first.
func (repo *auditRepository) ListRecordsForDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.HistoricRecord, error) {
	var recordModels []*model.HistoricRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("check_in_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list historic records")
	}

	records := make([]*entity.HistoricRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toHistoricRecordDomain(recordM))
	}

	return records, nil
}

// LocationIDsWithRecordsSince returns the IDs of locations referenced by
// at least one record written at or after the given time.
func (repo *auditRepository) LocationIDsWithRecordsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.HistoricRecordModel{}).
		Distinct("location_id").
		Where("check_in_at >= ?", since).
		Pluck("location_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audited location IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toHistoricRecordDomain converts a GORM HistoricRecordModel to a domain
// HistoricRecord entity.
func toHistoricRecordDomain(data *model.HistoricRecordModel) *entity.HistoricRecord {
	if data == nil {
		return nil
	}

	return &entity.HistoricRecord{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		LocationID:   data.LocationID,
		DeviceName:   data.DeviceName,
		Category:     data.Category,
		SerialNumber: data.SerialNumber,
		WindowStart:  data.WindowStart,
		WindowEnd:    data.WindowEnd,
		CheckInAt:    data.CheckInAt,
	}
}

// fromHistoricRecordDomain converts a domain HistoricRecord entity to a
// GORM HistoricRecordModel.
func fromHistoricRecordDomain(data *entity.HistoricRecord) *model.HistoricRecordModel {
	if data == nil {
		return nil
	}

	return &model.HistoricRecordModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		LocationID:   data.LocationID,
		DeviceName:   data.DeviceName,
		Category:     data.Category,
		SerialNumber: data.SerialNumber,
		WindowStart:  data.WindowStart,
		WindowEnd:    data.WindowEnd,
		CheckInAt:    data.CheckInAt,
	}
}
