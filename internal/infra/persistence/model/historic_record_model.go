package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoricRecordModel is the GORM-specific struct for the
// 'historic_records' table, the append-only check-in audit trail. Rows
// are inserted once and never updated or deleted.
type HistoricRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index:idx_historic_device_location"`
	LocationID   uuid.UUID `gorm:"type:uuid;not null;index:idx_historic_device_location"`
	DeviceName   string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(255)"`
	SerialNumber string    `gorm:"type:varchar(255)"`
	WindowStart  *time.Time
	WindowEnd    *time.Time
	CheckInAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (HistoricRecordModel) TableName() string {
	return "historic_records"
}
