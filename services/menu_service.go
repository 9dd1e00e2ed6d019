// services/menu_service.go
package services

import (
	"math"
	"strings"

	"restaurant-pos/entity"
	"restaurant-pos/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuInput struct {
	Name      string   `json:"name"`
	BasePrice *float64 `json:"base_price"`
}

func (in *MenuInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "name or base_price err")
	}
	if in.BasePrice == nil || math.IsNaN(*in.BasePrice) || math.IsInf(*in.BasePrice, 0) || *in.BasePrice < 0 {
		return invalid("base_price", "name or base_price err")
	}
	return nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	menus, err := s.Repo.FindAll()
	return menus, storageErr("list menu", err)
}

func (s *MenuService) Create(in *MenuInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	menu := entity.MenuItem{Name: strings.TrimSpace(in.Name), BasePrice: *in.BasePrice}
	if err := s.Repo.Create(&menu); err != nil {
		return 0, storageErr("create menu", err)
	}
	return menu.ID, nil
}

// Update changes name and price. Orders already placed keep their snapshot.
func (s *MenuService) Update(id uint, in *MenuInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	n, err := s.Repo.Update(id, strings.TrimSpace(in.Name), *in.BasePrice)
	return n, storageErr("update menu", err)
}

// Delete removes the item together with its options.
func (s *MenuService) Delete(id uint) (int64, error) {
	n, err := s.Repo.DeleteWithOptions(id)
	return n, storageErr("delete menu", err)
}
