package configs

import (
	"os"
	"path/filepath"
	"testing"

	"restaurant-pos/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sampleMenu = `items:
  - name: Mapo Tofu
    base_price: 18
    options:
      - category: spice
        option_name: mild
      - category: spice
        option_name: hot
  - name: Steamed Rice
    base_price: 2.5
`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("mysql", "x"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestParseMenuSeed(t *testing.T) {
	seed, err := ParseMenuSeed([]byte(sampleMenu))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seed.Items) != 2 || len(seed.Items[0].Options) != 2 || seed.Items[1].BasePrice != 2.5 {
		t.Fatalf("unexpected seed: %+v", seed)
	}
}

func TestParseMenuSeedErrors(t *testing.T) {
	bad := []string{
		"items:\n  - base_price: 3\n",
		"items:\n  - name: Soup\n    base_price: -1\n",
		"items:\n  - name: Soup\n    base_price: 1\n    options:\n      - category: size\n",
		"items: [",
	}
	for _, raw := range bad {
		if _, err := ParseMenuSeed([]byte(raw)); err == nil {
			t.Errorf("expected %q to fail", raw)
		}
	}
}

func TestSeedMenuIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(sampleMenu), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	n, err := SeedMenu(db, path)
	if err != nil || n != 2 {
		t.Fatalf("first seed = %d, %v", n, err)
	}
	n, err = SeedMenu(db, path)
	if err != nil || n != 0 {
		t.Fatalf("second seed = %d, %v", n, err)
	}

	var menus []entity.MenuItem
	if err := db.Preload("Options").Order("id").Find(&menus).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(menus) != 2 || len(menus[0].Options) != 2 || menus[0].Options[0].MenuID != menus[0].ID {
		t.Fatalf("unexpected menus: %+v", menus)
	}

	if n, err := SeedMenu(db, ""); err != nil || n != 0 {
		t.Fatalf("empty path = %d, %v", n, err)
	}
	if _, err := SeedMenu(db, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestSeedUsers(t *testing.T) {
	db := openTestDB(t)
	cfg := &Config{AdminEmail: "Boss@Example.com", AdminPassword: "s3cret", StaffEmail: "", StaffPassword: "x"}

	for i := 0; i < 2; i++ {
		if err := SeedUsers(db, cfg); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var users []entity.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected only the admin to be seeded, got %d users", len(users))
	}
	u := users[0]
	if u.Email != "boss@example.com" || u.Role != entity.RoleAdmin {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")); err != nil {
		t.Fatalf("password not hashed correctly: %v", err)
	}
}
