package models

import (
	"time"

	"github.com/google/uuid"
)

type Inventory struct {
	ID         uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	LotID      uuid.UUID `json:"lot_id" gorm:"type:text;index;not null"`
	LocationID uuid.UUID `json:"location_id" gorm:"type:text;index;not null"`
	Qty        int       `json:"qty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InventoryView denormalizes an inventory row with its lot, product and
// location for the dashboard's stock listing.
type InventoryView struct {
	Inventory
	LotNo        string    `json:"lot_no"`
	ExpDate      time.Time `json:"exp_date"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"product_sku"`
	TempClass    TempClass `json:"temp_class"`
	LocationCode string    `json:"location_code"`
	ZoneID       uuid.UUID `json:"zone_id"`
	ZoneName     string    `json:"zone_name"`
}
