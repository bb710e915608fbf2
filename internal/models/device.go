package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceKind string

const (
	DeviceCompressor DeviceKind = "COMPRESSOR"
	DeviceDoor       DeviceKind = "DOOR"
	DeviceLight      DeviceKind = "LIGHT"
	DeviceFan        DeviceKind = "FAN"
)

type Device struct {
	ID            uuid.UUID  `json:"id" gorm:"type:text;primaryKey"`
	ZoneID        *uuid.UUID `json:"zone_id" gorm:"type:text;index"`
	Name          string     `json:"name" gorm:"not null"`
	Kind          DeviceKind `json:"kind" gorm:"not null"`
	State         string     `json:"state"`
	LastCommandAt *time.Time `json:"last_command_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
