package models

import (
	"time"

	"github.com/google/uuid"
)

type SensorType string

const (
	SensorTemperature SensorType = "TEMPERATURE"
	SensorHumidity    SensorType = "HUMIDITY"
	SensorDoor        SensorType = "DOOR"
	SensorPower       SensorType = "POWER"
)

type SensorStatus string

const (
	SensorOnline  SensorStatus = "ONLINE"
	SensorWarning SensorStatus = "WARNING"
	SensorOffline SensorStatus = "OFFLINE"
	SensorError   SensorStatus = "ERROR"
)

type Sensor struct {
	ID           uuid.UUID    `json:"id" gorm:"type:text;primaryKey"`
	ZoneID       uuid.UUID    `json:"zone_id" gorm:"type:text;index;not null"`
	Name         string       `json:"name" gorm:"not null"`
	Type         SensorType   `json:"type" gorm:"not null"`
	CurrentValue float64      `json:"current_value"`
	Unit         string       `json:"unit"`
	Status       SensorStatus `json:"status" gorm:"not null"`
	LastUpdated  time.Time    `json:"last_updated"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// SensorView is a sensor joined with its zone name for list endpoints.
type SensorView struct {
	Sensor
	ZoneName string `json:"zone_name"`
}
