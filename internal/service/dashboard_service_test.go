package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
)

func newTestDashboardService(t *testing.T, database *gorm.DB) *DashboardService {
	t.Helper()

	svc := NewDashboardService(
		repository.NewContractRepository(database),
		repository.NewConfigRepository(database),
		zerolog.Nop(),
	)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSnapshot(t *testing.T) {
	database := openTestDB(t)
	svc := newTestDashboardService(t, database)
	ctx := context.Background()

	if err := repository.NewConfigRepository(database).
		Upsert(ctx, model.ConfigKeyAnnualBudget, "1000000000"); err != nil {
		t.Fatalf("set budget: %v", err)
	}

	seedContract(t, database, model.Contract{
		ID: "C25-001", Title: "진행", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "공고중",
		Status: model.StatusInProgress, Budget: 300_000_000,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-002", Title: "완료", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "집행완료",
		Status: model.StatusCompleted, Budget: 250_000_000, ExecutionAmount: 200_000_000,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-003", Title: "지연", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "계약준비",
		Status: model.StatusDelayed, Amount: 50_000_000,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-004", Title: "삭제됨", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "공고준비",
		Status: model.StatusDeleted, Budget: 999_000_000,
	})

	snapshot, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if snapshot.Budget.Total != 1_000_000_000 {
		t.Errorf("total = %d", snapshot.Budget.Total)
	}
	if snapshot.Budget.Allocated != 350_000_000 {
		t.Errorf("allocated = %d, deleted contract must not count", snapshot.Budget.Allocated)
	}
	if snapshot.Budget.Executed != 200_000_000 {
		t.Errorf("executed = %d", snapshot.Budget.Executed)
	}
	if snapshot.Budget.ExecutionRate != 20.0 {
		t.Errorf("execution rate = %v, want 20.0", snapshot.Budget.ExecutionRate)
	}

	if entry := snapshot.StatusSummary["진행 중"]; entry.Count != 1 {
		t.Errorf("진행 중 count = %d", entry.Count)
	}

	// the delayed contract must surface as a critical alert
	found := false
	for _, alert := range snapshot.Alerts {
		if alert.ContractID == "C25-003" && alert.Level == model.AlertCritical {
			found = true
		}
	}
	if !found {
		t.Errorf("delayed contract missing from alerts: %v", snapshot.Alerts)
	}
}

func TestSnapshotWithoutBudgetConfig(t *testing.T) {
	database := openTestDB(t)
	svc := newTestDashboardService(t, database)

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Budget.Total != 0 || snapshot.Budget.ExecutionRate != 0 {
		t.Errorf("empty budget = %+v", snapshot.Budget)
	}
}
