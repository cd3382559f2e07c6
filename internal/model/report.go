package model

import "time"

// BudgetSummary is the dashboard budget block. Remaining may go negative
// when commitments exceed the configured annual budget; it is not clamped.
type BudgetSummary struct {
	Total         int64   `json:"total"`
	Allocated     int64   `json:"allocated"`
	Contracted    int64   `json:"contracted"`
	Executed      int64   `json:"executed"`
	Remaining     int64   `json:"remaining"`
	ExecutionRate float64 `json:"executionRate"`
}

// StatusSummary is the per-status count and amount shown on the dashboard,
// keyed by the Korean status label.
type StatusSummary struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
)

// Alert is one attention-worthy contract on the dashboard.
type Alert struct {
	ContractID string     `json:"contractId"`
	Title      string     `json:"title"`
	Level      AlertLevel `json:"level"`
	Reason     string     `json:"reason"`
	Deadline   *string    `json:"deadline"`
}

// Register is the input for the xlsx/pdf contract-register exports.
type Register struct {
	GeneratedAt   time.Time
	Budget        BudgetSummary
	StatusSummary map[string]StatusSummary
	Contracts     []Contract
}
