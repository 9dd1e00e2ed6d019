// repository/menu_repository.go
package repository

import (
	"restaurant-pos/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll returns every menu item with its options.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	menus := []entity.MenuItem{}
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var menu entity.MenuItem
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.MenuItem) error {
	return r.DB.Create(menu).Error
}

// Update overwrites name and base_price, returning the affected row count.
func (r *MenuRepository) Update(id uint, name string, basePrice float64) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "base_price": basePrice})
	return res.RowsAffected, res.Error
}

// DeleteWithOptions removes a menu item and all of its options in one
// transaction. Either both go or neither does.
func (r *MenuRepository) DeleteWithOptions(id uint) (int64, error) {
	var deleted int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&entity.MenuOption{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.MenuItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
