package models

import (
	"time"

	"github.com/google/uuid"
)

type LotStatus string

const (
	LotActive  LotStatus = "ACTIVE"
	LotHold    LotStatus = "HOLD"
	LotExpired LotStatus = "EXPIRED"
)

type Lot struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	ProductID    uuid.UUID `json:"product_id" gorm:"type:text;index;not null"`
	LotNo        string    `json:"lot_no" gorm:"uniqueIndex;not null"`
	ExpDate      time.Time `json:"exp_date"`
	TotalQty     int       `json:"total_qty"`
	AvailableQty int       `json:"available_qty"`
	Status       LotStatus `json:"status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LotView is a lot joined with its product for list endpoints.
type LotView struct {
	Lot
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	TempClass   TempClass `json:"temp_class"`
}
