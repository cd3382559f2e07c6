package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
		&model.Contract{},
		&model.Note{},
		&model.ChangeLog{},
		&model.ConfigEntry{},
		&model.AuthCredential{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestNextSequence(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.NextSequence(ctx, "id_counter_2025")
		if err != nil {
			t.Fatalf("NextSequence: %v", err)
		}
		if got != want {
			t.Fatalf("NextSequence = %d, want %d", got, want)
		}
	}

	// independent counters per key
	got, err := repo.NextSequence(ctx, "id_counter_2026")
	if err != nil {
		t.Fatalf("NextSequence: %v", err)
	}
	if got != 1 {
		t.Errorf("new counter = %d, want 1", got)
	}
}

func TestUpsert(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, "annual_budget", "1000"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "annual_budget", "2000"); err != nil {
		t.Fatalf("Upsert again: %v", err)
	}

	entry, err := repo.Get(ctx, "annual_budget")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Value != "2000" {
		t.Errorf("value = %q, want 2000", entry.Value)
	}

	values, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if values["annual_budget"] != "2000" {
		t.Errorf("All = %v", values)
	}
}
