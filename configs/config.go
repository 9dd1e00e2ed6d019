package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	LogLevel  string

	// BusinessLocation is the fixed offset used to stamp orders and to
	// decide which calendar day an order belongs to.
	BusinessLocation *time.Location

	AuthEnabled  bool
	MenuSeedFile string

	AdminEmail    string
	AdminPassword string
	StaffEmail    string
	StaffPassword string
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skip .env: %v", err)
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}
	loc, err := ParseUTCOffset(getEnv("BUSINESS_UTC_OFFSET", "+08:00"))
	if err != nil {
		return nil, fmt.Errorf("BUSINESS_UTC_OFFSET: %w", err)
	}
	authEnabled, err := strconv.ParseBool(getEnv("AUTH_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("AUTH_ENABLED: %w", err)
	}

	cfg := &Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBSource:         getEnv("DB_SOURCE", "pos.db"),
		Port:             getEnv("PORT", "5000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           ttl,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		BusinessLocation: loc,
		AuthEnabled:      authEnabled,
		MenuSeedFile:     os.Getenv("MENU_SEED_FILE"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		StaffEmail:       os.Getenv("STAFF_EMAIL"),
		StaffPassword:    os.Getenv("STAFF_PASSWORD"),
	}
	if cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

// ParseUTCOffset turns "+08:00", "+8", "-05:30" or "0" into a fixed zone.
func ParseUTCOffset(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || strings.EqualFold(s, "Z") || strings.EqualFold(s, "UTC") {
		return time.UTC, nil
	}

	sign, signChar := 1, "+"
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign, signChar = -1, "-"
		s = s[1:]
	}

	hh, mm, hasMinutes := strings.Cut(s, ":")
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 14 {
		return nil, fmt.Errorf("invalid offset %q", s)
	}
	minutes := 0
	if hasMinutes {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes < 0 || minutes > 59 || len(mm) != 2 {
			return nil, fmt.Errorf("invalid offset %q", s)
		}
	}

	secs := sign * (hours*3600 + minutes*60)
	if secs == 0 {
		return time.UTC, nil
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", signChar, hours, minutes)
	return time.FixedZone(name, secs), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
