package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It holds one credential per edge device.
type DeviceModel struct {
	DeviceID   string `gorm:"type:varchar(128);primaryKey"`
	SecretHash string `gorm:"type:varchar(255);not null"`
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
