package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Known status labels. The column itself accepts any string.
const (
	StatusPlaced    = "已下单"
	StatusPreparing = "制作中"
	StatusServed    = "出餐"
)

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TableNumber string `gorm:"column:table_number;not null" json:"tableNumber"`

	// price snapshot of every line, stored as JSON
	Items datatypes.JSONSlice[OrderLineItem] `gorm:"not null" json:"items"`

	Takeaway    bool    `gorm:"not null" json:"takeaway"`
	Notes       *string `json:"notes"`
	ExtraCharge float64 `gorm:"not null" json:"extra_charge"`
	Paid        bool    `gorm:"not null" json:"paid"`
	Status      string  `gorm:"not null" json:"status"`

	// set once on insert, in the business offset
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null" json:"created_at"`
	CreatedDate string    `gorm:"index;not null" json:"created_date"`
}
