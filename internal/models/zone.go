package models

import (
	"time"

	"github.com/google/uuid"
)

type Zone struct {
	ID              uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	WarehouseID     uuid.UUID `json:"warehouse_id" gorm:"type:text;index;not null"`
	Name            string    `json:"name" gorm:"not null"`
	Code            string    `json:"code" gorm:"uniqueIndex;not null"`
	TempMin         float64   `json:"temp_min"`
	TempMax         float64   `json:"temp_max"`
	TempTarget      float64   `json:"temp_target"`
	CapacityPallets int       `json:"capacity_pallets"`
	UsedPallets     int       `json:"used_pallets"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ZoneView is a zone joined with its warehouse name for list endpoints.
type ZoneView struct {
	Zone
	WarehouseName string `json:"warehouse_name"`
}
