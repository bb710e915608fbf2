package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTempHigh      AlertType = "TEMP_HIGH"
	AlertTempLow       AlertType = "TEMP_LOW"
	AlertSensorOffline AlertType = "SENSOR_OFFLINE"
	AlertCapacity      AlertType = "CAPACITY"
	AlertExpiry        AlertType = "EXPIRY"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

type AlertStatus string

const (
	AlertOpen     AlertStatus = "OPEN"
	AlertResolved AlertStatus = "RESOLVED"
)

type Alert struct {
	ID         uuid.UUID     `json:"id" gorm:"type:text;primaryKey"`
	Type       AlertType     `json:"type" gorm:"not null"`
	Severity   AlertSeverity `json:"severity" gorm:"not null"`
	Message    string        `json:"message"`
	ZoneID     *uuid.UUID    `json:"zone_id" gorm:"type:text;index"`
	SensorID   *uuid.UUID    `json:"sensor_id" gorm:"type:text;index"`
	LotID      *uuid.UUID    `json:"lot_id" gorm:"type:text"`
	Status     AlertStatus   `json:"status" gorm:"index;not null"`
	ResolvedAt *time.Time    `json:"resolved_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
