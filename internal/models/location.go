package models

import (
	"time"

	"github.com/google/uuid"
)

type LocationStatus string

const (
	LocationEmpty    LocationStatus = "EMPTY"
	LocationOccupied LocationStatus = "OCCUPIED"
	LocationFull     LocationStatus = "FULL"
	LocationReserved LocationStatus = "RESERVED"
	LocationBlocked  LocationStatus = "BLOCKED"
)

type Location struct {
	ID         uuid.UUID      `json:"id" gorm:"type:text;primaryKey"`
	ZoneID     uuid.UUID      `json:"zone_id" gorm:"type:text;index;not null"`
	Code       string         `json:"code" gorm:"uniqueIndex;not null"`
	MaxQty     int            `json:"max_qty"`
	CurrentQty int            `json:"current_qty"`
	Status     LocationStatus `json:"status" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// DeriveLocationStatus maps a location's fill level to its status.
// RESERVED and BLOCKED are operator-assigned and never overridden by
// quantity changes.
func DeriveLocationStatus(currentQty, maxQty int, existing LocationStatus) LocationStatus {
	if existing == LocationReserved || existing == LocationBlocked {
		return existing
	}
	switch {
	case currentQty <= 0:
		return LocationEmpty
	case currentQty >= maxQty:
		return LocationFull
	default:
		return LocationOccupied
	}
}
