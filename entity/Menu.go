package entity

import "time"

// MenuItem is a dish on the menu. Options are loaded only when listing.
type MenuItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	BasePrice float64 `gorm:"not null" json:"base_price"`

	Options []MenuOption `gorm:"foreignKey:MenuID" json:"options"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (MenuItem) TableName() string { return "menu" }
