package dashboard

import (
	"testing"
	"time"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestClassifyAlertsDelayedIsCritical(t *testing.T) {
	contracts := []model.Contract{
		{ID: "C25-001", Title: "지연 계약", Status: model.StatusDelayed},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0].Level != model.AlertCritical || alerts[0].Reason != "상태: 지연" {
		t.Errorf("alert = %+v", alerts[0])
	}
}

func TestClassifyAlertsContractEnd(t *testing.T) {
	contracts := []model.Contract{
		{
			ID: "C25-001", Title: "경과", Status: model.StatusInProgress,
			Stage: "계약완료", ContractEnd: datePtr(2025, time.March, 6),
		},
		{
			ID: "C25-002", Title: "임박", Status: model.StatusInProgress,
			Stage: "계약완료", ContractEnd: datePtr(2025, time.March, 14),
		},
		{
			ID: "C25-003", Title: "여유", Status: model.StatusInProgress,
			Stage: "계약완료", ContractEnd: datePtr(2025, time.April, 30),
		},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
	if alerts[0].Level != model.AlertCritical || alerts[0].Reason != "계약종료 4일 경과" {
		t.Errorf("overdue alert = %+v", alerts[0])
	}
	if alerts[1].Level != model.AlertWarning || alerts[1].Reason != "계약종료 D-4" {
		t.Errorf("near-end alert = %+v", alerts[1])
	}
}

func TestClassifyAlertsDeadline(t *testing.T) {
	contracts := []model.Contract{
		{ID: "C25-001", Title: "긴급", Status: model.StatusInProgress, Deadline: datePtr(2025, time.March, 12)},
		{ID: "C25-002", Title: "주의", Status: model.StatusInProgress, Deadline: datePtr(2025, time.March, 16)},
		{ID: "C25-003", Title: "정상", Status: model.StatusInProgress, Deadline: datePtr(2025, time.March, 20)},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
	if alerts[0].Level != model.AlertCritical || alerts[0].Reason != "마감 D-2" {
		t.Errorf("critical deadline alert = %+v", alerts[0])
	}
	if alerts[1].Level != model.AlertWarning || alerts[1].Reason != "마감 D-6" {
		t.Errorf("warning deadline alert = %+v", alerts[1])
	}
}

func TestClassifyAlertsWaiting(t *testing.T) {
	contracts := []model.Contract{
		{
			ID: "C25-001", Title: "오래 대기", Status: model.StatusWaiting,
			UpdatedAt: now.AddDate(0, 0, -8),
		},
		{
			ID: "C25-002", Title: "방금 대기", Status: model.StatusWaiting,
			UpdatedAt: now.AddDate(0, 0, -2),
		},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0].Level != model.AlertWarning || alerts[0].Reason != "대기 8일" {
		t.Errorf("waiting alert = %+v", alerts[0])
	}
}

func TestClassifyAlertsSkipsSettledStatuses(t *testing.T) {
	contracts := []model.Contract{
		{ID: "C25-001", Status: model.StatusCompleted, Deadline: datePtr(2025, time.March, 11)},
		{ID: "C25-002", Status: model.StatusBeforeStart, Deadline: datePtr(2025, time.March, 11)},
	}

	if alerts := ClassifyAlerts(contracts, now); len(alerts) != 0 {
		t.Errorf("alerts = %v, want none", alerts)
	}
}

func TestClassifyAlertsOnePerContract(t *testing.T) {
	// Delayed and overdue at once: the status rule wins.
	contracts := []model.Contract{
		{
			ID: "C25-001", Title: "복합", Status: model.StatusDelayed,
			Stage: "계약완료", ContractEnd: datePtr(2025, time.March, 1),
			Deadline: datePtr(2025, time.March, 11),
		},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0].Reason != "상태: 지연" {
		t.Errorf("reason = %q", alerts[0].Reason)
	}
}

func TestClassifyAlertsCriticalFirst(t *testing.T) {
	contracts := []model.Contract{
		{ID: "C25-001", Status: model.StatusInProgress, Deadline: datePtr(2025, time.March, 16)},
		{ID: "C25-002", Status: model.StatusDelayed},
		{ID: "C25-003", Status: model.StatusInProgress, Deadline: datePtr(2025, time.March, 15)},
	}

	alerts := ClassifyAlerts(contracts, now)
	if len(alerts) != 3 {
		t.Fatalf("alerts = %d, want 3", len(alerts))
	}
	if alerts[0].ContractID != "C25-002" {
		t.Errorf("critical alert must sort first, got %s", alerts[0].ContractID)
	}
	// warnings keep their input order
	if alerts[1].ContractID != "C25-001" || alerts[2].ContractID != "C25-003" {
		t.Errorf("warning order = %s, %s", alerts[1].ContractID, alerts[2].ContractID)
	}
}
