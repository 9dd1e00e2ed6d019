package entity

// MenuOption is one choice within a category of a menu item, e.g. "spice" -> "hot".
type MenuOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MenuID     uint   `gorm:"index;not null" json:"menu_id"`
	Category   string `gorm:"not null" json:"category"`
	OptionName string `gorm:"not null" json:"option_name"`
}

func (MenuOption) TableName() string { return "menu_options" }
