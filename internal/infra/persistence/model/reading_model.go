package model

import (
	"time"

	"gorm.io/datatypes"
)

// ReadingModel is the GORM-specific struct for the append-only 'readings' table.
// ID is the database identity. SequenceID is the per-device counter and is
// unique together with DeviceID. Day is the UTC calendar bucket of Ts and
// drives every range scan.
type ReadingModel struct {
	ID         uint64            `gorm:"primaryKey;autoIncrement"`
	DeviceID   string            `gorm:"type:varchar(128);not null;uniqueIndex:idx_readings_device_seq,priority:1;index:idx_readings_device_day_ts,priority:1"`
	SequenceID uint64            `gorm:"not null;uniqueIndex:idx_readings_device_seq,priority:2"`
	Day        string            `gorm:"type:char(10);not null;index:idx_readings_device_day_ts,priority:2"`
	Ts         time.Time         `gorm:"column:ts;not null;index:idx_readings_device_day_ts,priority:3"`
	Payload    datatypes.JSONMap `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReadingModel) TableName() string {
	return "readings"
}
