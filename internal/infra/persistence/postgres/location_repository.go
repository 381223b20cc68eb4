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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLocation
		}

		return errors.Wrap(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationByName retrieves a location by name and kind. Used to
// resolve the well-known pool location.
func (repo *locationRepository) FindLocationByName(ctx context.Context, name string, kind entity.LocationKind) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("name = ? AND kind = ?", name, string(kind)).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by name")
	}

	return toLocationDomain(&locationM), nil
}

// ListLocationsByKind retrieves all locations of the given kind.
func (repo *locationRepository) ListLocationsByKind(ctx context.Context, kind entity.LocationKind) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("created_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by kind")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// UpdateWindowEnd overwrites a location's window end date.
func (repo *locationRepository) UpdateWindowEnd(ctx context.Context, id uuid.UUID, end time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("window_end", end)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location window end")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:   data.ID,
		Name: data.Name,
		Kind: entity.LocationKind(data.Kind),
		Window: entity.DateWindow{
			Start: data.WindowStart,
			End:   data.WindowEnd,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Kind:        string(data.Kind),
		WindowStart: data.Window.Start,
		WindowEnd:   data.Window.End,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
