package services

import (
	"path/filepath"
	"testing"
	"time"

	"restaurant-pos/configs"

	"gorm.io/gorm"
)

var utc8 = time.FixedZone("UTC+08:00", 8*3600)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.Open("sqlite", filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fixedClock returns a clock whose current time is read from *now.
func fixedClock(now *time.Time) *BusinessClock {
	return NewBusinessClock(utc8).WithNow(func() time.Time { return *now })
}

type recordingNotifier struct {
	events []OrderEvent
}

func (r *recordingNotifier) Publish(ev OrderEvent) { r.events = append(r.events, ev) }

func ptr[T any](v T) *T { return &v }
