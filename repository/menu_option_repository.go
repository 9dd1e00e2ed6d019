package repository

import (
	"restaurant-pos/entity"

	"gorm.io/gorm"
)

type MenuOptionRepository struct {
	DB *gorm.DB
}

func NewMenuOptionRepository(db *gorm.DB) *MenuOptionRepository {
	return &MenuOptionRepository{DB: db}
}

func (r *MenuOptionRepository) Create(opt *entity.MenuOption) error {
	return r.DB.Create(opt).Error
}

// FindByMenu returns the options of one menu item, never nil.
func (r *MenuOptionRepository) FindByMenu(menuID uint) ([]entity.MenuOption, error) {
	opts := []entity.MenuOption{}
	err := r.DB.Where("menu_id = ?", menuID).Order("id").Find(&opts).Error
	return opts, err
}

func (r *MenuOptionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuOption{}, id)
	return res.RowsAffected, res.Error
}
