package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// One row per pool, person, or reservation location. The date window
// columns are only populated for reservations.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_locations_name_kind"`
	Kind        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_locations_name_kind"`
	WindowStart *time.Time
	WindowEnd   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
