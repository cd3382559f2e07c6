package model

import "time"

// Config keys used by the application.
const (
	ConfigKeyAnnualBudget    = "annual_budget"
	ConfigKeyIDCounterPrefix = "id_counter_"
)

// ConfigEntry is a flat key-value store for process-wide settings: the
// annual budget and the per-year contract ID counters.
type ConfigEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (ConfigEntry) TableName() string { return "configs" }
