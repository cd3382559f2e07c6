package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
)

func TestSetAnnualBudgetWritesChangelog(t *testing.T) {
	database := openTestDB(t)
	svc := NewConfigService(
		repository.NewConfigRepository(database),
		repository.NewChangeLogRepository(database),
		zerolog.Nop(),
	)
	ctx := context.Background()

	if err := svc.SetAnnualBudget(ctx, 1_000_000_000); err != nil {
		t.Fatalf("SetAnnualBudget: %v", err)
	}

	value, err := svc.Get(ctx, model.ConfigKeyAnnualBudget)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "1000000000" {
		t.Errorf("value = %q", value)
	}

	var entries []model.ChangeLog
	if err := database.Find(&entries).Error; err != nil {
		t.Fatalf("load changelog: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("changelog entries = %d, want 1", len(entries))
	}
	if entries[0].Action != model.ActionBudget || entries[0].ContractID != nil {
		t.Errorf("entry = %+v, want contract-less BUDGET entry", entries[0])
	}

	if err := svc.SetAnnualBudget(ctx, -5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative budget err = %v, want ErrInvalidInput", err)
	}
}

func TestSetRejectsNonNumericBudget(t *testing.T) {
	database := openTestDB(t)
	svc := NewConfigService(
		repository.NewConfigRepository(database),
		repository.NewChangeLogRepository(database),
		zerolog.Nop(),
	)

	err := svc.Set(context.Background(), model.ConfigKeyAnnualBudget, "십억")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	database := openTestDB(t)
	svc := NewConfigService(
		repository.NewConfigRepository(database),
		repository.NewChangeLogRepository(database),
		zerolog.Nop(),
	)

	if _, err := svc.Get(context.Background(), "없는키"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
