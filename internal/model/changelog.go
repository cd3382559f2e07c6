package model

import "time"

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionStage  Action = "STAGE"
	ActionStatus Action = "STATUS"
	ActionDelete Action = "DELETE"
	ActionNote   Action = "NOTE"
	ActionBudget Action = "BUDGET"
)

// ChangeLog is the append-only audit trail: one row per field changed per
// mutation. ContractID is nullable for process-wide events such as annual
// budget changes. Rows are never updated after insert.
type ChangeLog struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	ContractID *string `gorm:"size:16;index"`
	Action     Action  `gorm:"size:16;not null"`
	Detail     string  `gorm:"not null"`
	FromValue  *string
	ToValue    *string
	CreatedAt  time.Time
}
