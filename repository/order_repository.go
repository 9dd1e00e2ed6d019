package repository

import (
	"restaurant-pos/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByDate compares the stored calendar date, not a timestamp range.
func (r *OrderRepository) FindByDate(date string) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.DB.Where("created_date = ?", date).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.DB.Order("id DESC").Find(&orders).Error
	return orders, err
}

// FindPage returns one page (newest first) and the total number of orders.
func (r *OrderRepository) FindPage(page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := []entity.Order{}
	if err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update applies the given columns; created_at and status are never in fields
// coming from the service.
func (r *OrderRepository) Update(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Order{}, id)
	return res.RowsAffected, res.Error
}
