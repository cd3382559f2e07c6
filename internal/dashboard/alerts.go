package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/sgkim-dev/contract-desk/internal/korean"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/workflow"
)

// Alert thresholds in days.
const (
	criticalDays        = 3 // deadline within D-3: critical
	warningDays         = 7 // deadline within D-7: warning
	contractEndWarnDays = 5 // contract end within D-5: warning
	waitingDays         = 7 // stuck in WAITING this long: warning
)

// ClassifyAlerts walks the live contract set and produces at most one alert
// per contract, first matching rule wins:
//
//  1. DELAYED status is always critical.
//  2. A signed contract whose end date is past (critical) or near (warning).
//  3. Deadline proximity, critical inside D-3, warning inside D-7.
//  4. WAITING with no update for a week.
//
// Completed and not-yet-started contracts never alert. Critical entries sort
// before warnings, otherwise input order is kept.
func ClassifyAlerts(contracts []model.Contract, now time.Time) []model.Alert {
	alerts := make([]model.Alert, 0)

	for _, c := range contracts {
		if c.Status == model.StatusCompleted || c.Status == model.StatusBeforeStart {
			continue
		}

		if c.Status == model.StatusDelayed {
			alerts = append(alerts, newAlert(c, model.AlertCritical, "상태: 지연", c.Deadline))
			continue
		}

		if c.Stage == workflow.SignedStage && c.ContractEnd != nil {
			days := korean.DDay(*c.ContractEnd, now)
			if days < 0 {
				alerts = append(alerts, newAlert(c, model.AlertCritical,
					fmt.Sprintf("계약종료 %d일 경과", -days), c.ContractEnd))
				continue
			}
			if days <= contractEndWarnDays {
				alerts = append(alerts, newAlert(c, model.AlertWarning,
					fmt.Sprintf("계약종료 D-%d", days), c.ContractEnd))
				continue
			}
		}

		if c.Deadline != nil {
			days := korean.DDay(*c.Deadline, now)
			if days >= 0 && days <= criticalDays {
				alerts = append(alerts, newAlert(c, model.AlertCritical,
					fmt.Sprintf("마감 D-%d", days), c.Deadline))
				continue
			}
			if days > criticalDays && days <= warningDays {
				alerts = append(alerts, newAlert(c, model.AlertWarning,
					fmt.Sprintf("마감 D-%d", days), c.Deadline))
				continue
			}
		}

		if c.Status == model.StatusWaiting {
			waiting := korean.DaysSince(c.UpdatedAt, now)
			if waiting >= waitingDays {
				alerts = append(alerts, newAlert(c, model.AlertWarning,
					fmt.Sprintf("대기 %d일", waiting), c.Deadline))
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Level == model.AlertCritical && alerts[j].Level == model.AlertWarning
	})

	return alerts
}

func newAlert(c model.Contract, level model.AlertLevel, reason string, date *time.Time) model.Alert {
	var deadline *string
	if date != nil {
		formatted := date.Format("2006-01-02")
		deadline = &formatted
	}
	return model.Alert{
		ContractID: c.ID,
		Title:      c.Title,
		Level:      level,
		Reason:     reason,
		Deadline:   deadline,
	}
}
