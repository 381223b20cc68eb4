// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindDeviceByID retrieves a device with its current location.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListDevices retrieves every device with its current location.
func (repo *deviceRepository) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Order("name ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// ListDevicesByLocation retrieves the devices currently at a location.
func (repo *deviceRepository) ListDevicesByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("location_id = ?", locationID).
		Order("name ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices by location")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// CountDevicesByLocation returns device counts grouped by current
// location in a single query.
func (repo *deviceRepository) CountDevicesByLocation(ctx context.Context) (map[uuid.UUID]int64, error) {
	type row struct {
		LocationID uuid.UUID
		Count      int64
	}
	var rows []row

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Select("location_id, COUNT(*) AS count").
		Where("location_id IS NOT NULL").
		Group("location_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count devices by location")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.LocationID] = r.Count
	}

	return counts, nil
}

// UpdateLocation overwrites the device's current location reference.
func (repo *deviceRepository) UpdateLocation(ctx context.Context, deviceID, locationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", deviceID).
		Update("location_id", locationID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrLocationNotFound
		}

		return errors.Wrap(result.Error, "failed to update device location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:           data.ID,
		Name:         data.Name,
		Category:     data.Category,
		SerialNumber: data.SerialNumber,
		Location:     toLocationDomain(data.Location),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
