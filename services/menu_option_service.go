package services

import (
	"errors"
	"strings"

	"restaurant-pos/entity"
	"restaurant-pos/repository"

	"gorm.io/gorm"
)

type MenuOptionService struct {
	Repo  *repository.MenuOptionRepository
	Menus *repository.MenuRepository
}

func NewMenuOptionService(repo *repository.MenuOptionRepository, menus *repository.MenuRepository) *MenuOptionService {
	return &MenuOptionService{Repo: repo, Menus: menus}
}

type OptionInput struct {
	Category   string `json:"category"`
	OptionName string `json:"option_name"`
}

func (s *MenuOptionService) Create(menuID uint, in *OptionInput) (uint, error) {
	category := strings.TrimSpace(in.Category)
	name := strings.TrimSpace(in.OptionName)
	if category == "" || name == "" {
		return 0, invalid("option", "category or option_name loss")
	}

	if _, err := s.Menus.FindByID(menuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMenuNotFound
		}
		return 0, storageErr("find menu", err)
	}

	opt := entity.MenuOption{MenuID: menuID, Category: category, OptionName: name}
	if err := s.Repo.Create(&opt); err != nil {
		return 0, storageErr("create option", err)
	}
	return opt.ID, nil
}

func (s *MenuOptionService) ListByMenu(menuID uint) ([]entity.MenuOption, error) {
	opts, err := s.Repo.FindByMenu(menuID)
	return opts, storageErr("list options", err)
}

func (s *MenuOptionService) Delete(id uint) (int64, error) {
	n, err := s.Repo.Delete(id)
	return n, storageErr("delete option", err)
}
