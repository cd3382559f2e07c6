// Package dashboard computes the budget roll-up and the attention list over
// the live (non-deleted) contract set. Pure functions; the service layer
// feeds them from the store.
package dashboard

import (
	"math"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

// DisplayAmount is the per-contract figure shown everywhere: the allocated
// budget when set, falling back to the legacy single amount.
func DisplayAmount(c model.Contract) int64 {
	if c.Budget > 0 {
		return c.Budget
	}
	return c.Amount
}

// AggregateBudget rolls the contract set up against the configured annual
// budget. Allocated and contracted sum over running contracts (IN_PROGRESS,
// WAITING, DELAYED); executed sums over completed ones, preferring the
// execution amount when recorded. Remaining is not clamped.
func AggregateBudget(contracts []model.Contract, totalBudget int64) model.BudgetSummary {
	var allocated, contracted, executed int64

	for _, c := range contracts {
		switch c.Status {
		case model.StatusInProgress, model.StatusWaiting, model.StatusDelayed:
			allocated += DisplayAmount(c)
			contracted += c.ContractAmount
		case model.StatusCompleted:
			if c.ExecutionAmount > 0 {
				executed += c.ExecutionAmount
			} else {
				executed += DisplayAmount(c)
			}
		}
	}

	rate := 0.0
	if totalBudget > 0 {
		rate = math.Round(float64(executed)/float64(totalBudget)*1000) / 10
	}

	return model.BudgetSummary{
		Total:         totalBudget,
		Allocated:     allocated,
		Contracted:    contracted,
		Executed:      executed,
		Remaining:     totalBudget - allocated - executed,
		ExecutionRate: rate,
	}
}

// SummarizeStatuses counts contracts and sums display amounts per Korean
// status label across the five live statuses.
func SummarizeStatuses(contracts []model.Contract) map[string]model.StatusSummary {
	summary := make(map[string]model.StatusSummary, len(model.LiveStatuses))
	for _, status := range model.LiveStatuses {
		summary[status.Label()] = model.StatusSummary{}
	}

	for _, c := range contracts {
		entry, ok := summary[c.Status.Label()]
		if !ok {
			continue
		}
		entry.Count++
		entry.Amount += DisplayAmount(c)
		summary[c.Status.Label()] = entry
	}

	return summary
}
