package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table. A
// device holds a single nullable reference to its current location;
// NULL means the device was never provisioned.
type DeviceModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Category     string         `gorm:"type:varchar(255)"`
	SerialNumber string         `gorm:"type:varchar(255)"`
	LocationID   *uuid.UUID     `gorm:"type:uuid;index"`
	Location     *LocationModel `gorm:"foreignKey:LocationID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
