package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

// ErrInvalidStage marks a stage outside the contract method's stage list.
var ErrInvalidStage = errors.New("invalid stage")

// Change is one audited field mutation produced by a transition.
type Change struct {
	Action model.Action
	Field  string
	From   string
	To     string
}

// StageTransition is the outcome of a valid stage change: the new stage,
// any status derived from it, and the changelog entries to record.
type StageTransition struct {
	Stage   string
	Status  *model.Status
	Changes []Change
}

// PlanStageChange validates newStage against the contract's method and
// derives the status rules: reaching the terminal stage completes the
// contract; any first move away from BEFORE_START starts it.
func PlanStageChange(c *model.Contract, newStage string) (*StageTransition, error) {
	stages := StagesFor(c.Method)
	if !IsValidStage(c.Method, newStage) {
		return nil, fmt.Errorf("%w: 유효하지 않은 단계입니다. 가능한 단계: %s",
			ErrInvalidStage, strings.Join(stages, ", "))
	}

	t := &StageTransition{
		Stage: newStage,
		Changes: []Change{
			{Action: model.ActionStage, Field: "단계", From: c.Stage, To: newStage},
		},
	}

	if newStage == TerminalStage {
		completed := model.StatusCompleted
		t.Status = &completed
		t.Changes = append(t.Changes, Change{
			Action: model.ActionStatus,
			Field:  "상태",
			From:   string(c.Status),
			To:     string(completed),
		})
	} else if c.Status == model.StatusBeforeStart && newStage != c.Stage {
		started := model.StatusInProgress
		t.Status = &started
		t.Changes = append(t.Changes, Change{
			Action: model.ActionStatus,
			Field:  "상태",
			From:   string(model.StatusBeforeStart),
			To:     string(started),
		})
	}

	return t, nil
}

// PaymentCompletion is the compound transition triggered by setting the
// payment date: the contract jumps to the terminal stage and COMPLETED no
// matter where it currently stands.
type PaymentCompletion struct {
	PaymentDate time.Time
	Stage       string
	Status      model.Status
	Changes     []Change
}

// PlanPaymentCompletion records the payment date plus the forced stage and
// status moves, all three logged.
func PlanPaymentCompletion(c *model.Contract, paymentDate time.Time) *PaymentCompletion {
	from := "없음"
	if c.PaymentDate != nil {
		from = c.PaymentDate.Format("2006-01-02")
	}
	return &PaymentCompletion{
		PaymentDate: paymentDate,
		Stage:       TerminalStage,
		Status:      model.StatusCompleted,
		Changes: []Change{
			{Action: model.ActionUpdate, Field: "대금집행일", From: from, To: paymentDate.Format("2006-01-02")},
			{Action: model.ActionStage, Field: "단계", From: c.Stage, To: TerminalStage},
			{Action: model.ActionStatus, Field: "상태", From: string(c.Status), To: string(model.StatusCompleted)},
		},
	}
}
