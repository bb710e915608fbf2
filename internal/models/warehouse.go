package models

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID              uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Code            string    `json:"code" gorm:"uniqueIndex;not null"`
	Address         *string   `json:"address"`
	CapacityPallets int       `json:"capacity_pallets"`
	UsedPallets     int       `json:"used_pallets"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
