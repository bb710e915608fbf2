package models

import (
	"time"

	"github.com/google/uuid"
)

type InboundStatus string

const (
	InboundPending   InboundStatus = "PENDING"
	InboundReceiving InboundStatus = "RECEIVING"
	InboundCompleted InboundStatus = "COMPLETED"
	InboundCancelled InboundStatus = "CANCELLED"
)

type OutboundStatus string

const (
	OutboundPending   OutboundStatus = "PENDING"
	OutboundPicking   OutboundStatus = "PICKING"
	OutboundPacked    OutboundStatus = "PACKED"
	OutboundShipped   OutboundStatus = "SHIPPED"
	OutboundCancelled OutboundStatus = "CANCELLED"
)

type InboundOrder struct {
	ID           uuid.UUID     `json:"id" gorm:"type:text;primaryKey"`
	OrderNo      string        `json:"order_no" gorm:"uniqueIndex;not null"`
	SupplierName string        `json:"supplier_name"`
	Status       InboundStatus `json:"status" gorm:"not null"`
	ETA          *time.Time    `json:"eta"`
	TotalQty     int           `json:"total_qty"`
	ReceivedQty  int           `json:"received_qty"`
	Lines        []InboundLine `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type InboundLine struct {
	ID          uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:text;index;not null"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:text;not null"`
	LotNo       string    `json:"lot_no"`
	ExpectedQty int       `json:"expected_qty"`
	ReceivedQty int       `json:"received_qty"`
}

type OutboundOrder struct {
	ID           uuid.UUID      `json:"id" gorm:"type:text;primaryKey"`
	OrderNo      string         `json:"order_no" gorm:"uniqueIndex;not null"`
	CustomerName string         `json:"customer_name"`
	Status       OutboundStatus `json:"status" gorm:"not null"`
	ShipBy       *time.Time     `json:"ship_by"`
	TotalQty     int            `json:"total_qty"`
	PickedQty    int            `json:"picked_qty"`
	ShippedQty   int            `json:"shipped_qty"`
	Lines        []OutboundLine `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type OutboundLine struct {
	ID         uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:text;index;not null"`
	ProductID  uuid.UUID `json:"product_id" gorm:"type:text;not null"`
	OrderedQty int       `json:"ordered_qty"`
	PickedQty  int       `json:"picked_qty"`
}
