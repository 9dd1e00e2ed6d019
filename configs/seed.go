package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"restaurant-pos/entity"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedUsers creates the admin and staff accounts named in the config.
// Accounts that already exist are left as they are.
func SeedUsers(database *gorm.DB, cfg *Config) error {
	accounts := []struct {
		email, password, name, role string
	}{
		{cfg.AdminEmail, cfg.AdminPassword, "Admin", entity.RoleAdmin},
		{cfg.StaffEmail, cfg.StaffPassword, "Staff", entity.RoleStaff},
	}

	for _, a := range accounts {
		email := strings.ToLower(strings.TrimSpace(a.email))
		if email == "" || a.password == "" {
			slog.Debug("skip seeding user", slog.String("role", a.role))
			continue
		}

		var count int64
		if err := database.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{Email: email, Password: string(hash), Name: a.name, Role: a.role}
		if err := database.Create(&user).Error; err != nil {
			return err
		}
		slog.Info("seeded user", slog.String("email", email), slog.String("role", a.role))
	}
	return nil
}

// MenuSeed is the layout of the YAML menu file.
type MenuSeed struct {
	Items []struct {
		Name      string  `yaml:"name"`
		BasePrice float64 `yaml:"base_price"`
		Options   []struct {
			Category   string `yaml:"category"`
			OptionName string `yaml:"option_name"`
		} `yaml:"options"`
	} `yaml:"items"`
}

func ParseMenuSeed(data []byte) (*MenuSeed, error) {
	var seed MenuSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	for i, it := range seed.Items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		if it.BasePrice < 0 {
			return nil, fmt.Errorf("item %q: base_price must not be negative", it.Name)
		}
		for _, o := range it.Options {
			if strings.TrimSpace(o.Category) == "" || strings.TrimSpace(o.OptionName) == "" {
				return nil, fmt.Errorf("item %q: option needs category and option_name", it.Name)
			}
		}
	}
	return &seed, nil
}

// SeedMenu loads the YAML file at path and creates every item whose name is
// not on the menu yet. An empty path is a no-op.
func SeedMenu(database *gorm.DB, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	seed, err := ParseMenuSeed(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	created := 0
	err = database.Transaction(func(tx *gorm.DB) error {
		for _, it := range seed.Items {
			name := strings.TrimSpace(it.Name)
			var existing entity.MenuItem
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			menu := entity.MenuItem{Name: name, BasePrice: it.BasePrice}
			for _, o := range it.Options {
				menu.Options = append(menu.Options, entity.MenuOption{
					Category:   strings.TrimSpace(o.Category),
					OptionName: strings.TrimSpace(o.OptionName),
				})
			}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
