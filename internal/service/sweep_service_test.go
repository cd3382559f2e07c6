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

func newTestSweepService(t *testing.T, database *gorm.DB) *SweepService {
	t.Helper()

	svc := NewSweepService(
		repository.NewContractRepository(database),
		repository.NewChangeLogRepository(database),
		zerolog.Nop(),
	)
	svc.now = func() time.Time { return testNow }
	return svc
}

func seedContract(t *testing.T, database *gorm.DB, contract model.Contract) {
	t.Helper()
	if err := database.Create(&contract).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}
}

func TestMarkOverdueFlagsSignedContracts(t *testing.T) {
	database := openTestDB(t)
	svc := newTestSweepService(t, database)
	ctx := context.Background()

	past := testNow.AddDate(0, 0, -3)
	future := testNow.AddDate(0, 0, 3)

	seedContract(t, database, model.Contract{
		ID: "C25-001", Title: "경과", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "계약완료",
		Status: model.StatusInProgress, ContractEnd: &past,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-002", Title: "미래", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "계약완료",
		Status: model.StatusInProgress, ContractEnd: &future,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-003", Title: "다른 단계", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "지출준비",
		Status: model.StatusInProgress, ContractEnd: &past,
	})
	seedContract(t, database, model.Contract{
		ID: "C25-004", Title: "이미 완료", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "계약완료",
		Status: model.StatusCompleted, ContractEnd: &past,
	})

	flagged, err := svc.MarkOverdue(ctx)
	if err != nil {
		t.Fatalf("MarkOverdue: %v", err)
	}
	if len(flagged) != 1 || flagged[0] != "C25-001" {
		t.Fatalf("flagged = %v, want [C25-001]", flagged)
	}

	var contract model.Contract
	if err := database.First(&contract, "id = ?", "C25-001").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if contract.Status != model.StatusDelayed {
		t.Errorf("status = %s, want DELAYED", contract.Status)
	}

	var entries []model.ChangeLog
	if err := database.Where("contract_id = ?", "C25-001").Find(&entries).Error; err != nil {
		t.Fatalf("load changelog: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != model.ActionStatus {
		t.Errorf("changelog = %+v", entries)
	}
}

func TestMarkOverdueIsIdempotent(t *testing.T) {
	database := openTestDB(t)
	svc := newTestSweepService(t, database)
	ctx := context.Background()

	past := testNow.AddDate(0, 0, -10)
	seedContract(t, database, model.Contract{
		ID: "C25-001", Title: "경과", Category: model.CategoryService,
		Method: model.MethodOpenBid, Stage: "계약완료",
		Status: model.StatusInProgress, ContractEnd: &past,
	})

	if _, err := svc.MarkOverdue(ctx); err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	flagged, err := svc.MarkOverdue(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if len(flagged) != 0 {
		t.Errorf("second sweep flagged %v, want none", flagged)
	}
}
