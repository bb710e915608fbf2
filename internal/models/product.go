package models

import (
	"time"

	"github.com/google/uuid"
)

type TempClass string

const (
	TempClassFrozen  TempClass = "FROZEN"
	TempClassChilled TempClass = "CHILLED"
	TempClassAmbient TempClass = "AMBIENT"
)

type Product struct {
	ID            uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	SKU           string    `json:"sku" gorm:"uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"not null"`
	TempClass     TempClass `json:"temp_class" gorm:"not null"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	UnitPrice     float64   `json:"unit_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
