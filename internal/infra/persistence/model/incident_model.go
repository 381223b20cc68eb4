package model

import (
	"time"

	"github.com/google/uuid"
)

// IncidentModel is the GORM-specific struct for the 'incidents' table,
// holding the active (unresolved) incidents.
type IncidentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncidentModel) TableName() string {
	return "incidents"
}

// ResolvedIncidentModel is the GORM-specific struct for the
// 'resolved_incidents' table. Rows keep the original incident ID as
// their primary key so an interrupted resolve can find its copy.
type ResolvedIncidentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	DeviceID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
	ResolvedAt      time.Time `gorm:"not null"`
	ResolutionNotes string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ResolvedIncidentModel) TableName() string {
	return "resolved_incidents"
}
