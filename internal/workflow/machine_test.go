package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

func TestPlanStageChangeStartsContract(t *testing.T) {
	contract := &model.Contract{
		Method: model.MethodOpenBid,
		Stage:  "공고준비",
		Status: model.StatusBeforeStart,
	}

	transition, err := PlanStageChange(contract, "공고중")
	if err != nil {
		t.Fatalf("PlanStageChange: %v", err)
	}
	if transition.Stage != "공고중" {
		t.Errorf("stage = %q", transition.Stage)
	}
	if transition.Status == nil || *transition.Status != model.StatusInProgress {
		t.Errorf("status = %v, want IN_PROGRESS", transition.Status)
	}
	if len(transition.Changes) != 2 {
		t.Errorf("changes = %d, want 2 (stage + status)", len(transition.Changes))
	}
}

func TestPlanStageChangeTerminalCompletes(t *testing.T) {
	contract := &model.Contract{
		Method: model.MethodPrivateNegotiation,
		Stage:  "지출준비",
		Status: model.StatusInProgress,
	}

	transition, err := PlanStageChange(contract, "집행완료")
	if err != nil {
		t.Fatalf("PlanStageChange: %v", err)
	}
	if transition.Status == nil || *transition.Status != model.StatusCompleted {
		t.Errorf("terminal stage must force COMPLETED, got %v", transition.Status)
	}
}

func TestPlanStageChangeKeepsRunningStatus(t *testing.T) {
	contract := &model.Contract{
		Method: model.MethodOpenBid,
		Stage:  "공고중",
		Status: model.StatusInProgress,
	}

	transition, err := PlanStageChange(contract, "개찰완료")
	if err != nil {
		t.Fatalf("PlanStageChange: %v", err)
	}
	if transition.Status != nil {
		t.Errorf("mid-flow move must not touch status, got %v", *transition.Status)
	}
	if len(transition.Changes) != 1 {
		t.Errorf("changes = %d, want 1", len(transition.Changes))
	}
}

func TestPlanStageChangeRejectsForeignStage(t *testing.T) {
	contract := &model.Contract{
		Method: model.MethodPrivateNegotiation,
		Stage:  "계약준비",
		Status: model.StatusBeforeStart,
	}

	_, err := PlanStageChange(contract, "공고중")
	if !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("err = %v, want ErrInvalidStage", err)
	}
}

func TestPlanPaymentCompletion(t *testing.T) {
	contract := &model.Contract{
		Method: model.MethodOpenBid,
		Stage:  "계약완료",
		Status: model.StatusInProgress,
	}
	paymentDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	plan := PlanPaymentCompletion(contract, paymentDate)
	if plan.Stage != TerminalStage {
		t.Errorf("stage = %q, want %q", plan.Stage, TerminalStage)
	}
	if plan.Status != model.StatusCompleted {
		t.Errorf("status = %q, want COMPLETED", plan.Status)
	}
	if len(plan.Changes) != 3 {
		t.Fatalf("changes = %d, want 3 (date + stage + status)", len(plan.Changes))
	}
	if plan.Changes[0].From != "없음" || plan.Changes[0].To != "2025-06-01" {
		t.Errorf("payment date change = %+v", plan.Changes[0])
	}
}
