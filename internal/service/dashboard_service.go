package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/dashboard"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
)

// Snapshot is the dashboard payload: the budget roll-up, per-status counts
// and the attention list, computed over the live contract set.
type Snapshot struct {
	Budget        model.BudgetSummary            `json:"budget"`
	StatusSummary map[string]model.StatusSummary `json:"statusSummary"`
	Alerts        []model.Alert                  `json:"alerts"`
}

type DashboardService struct {
	contracts *repository.ContractRepository
	configs   *repository.ConfigRepository
	log       zerolog.Logger

	now func() time.Time
}

func NewDashboardService(
	contracts *repository.ContractRepository,
	configs *repository.ConfigRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		contracts: contracts,
		configs:   configs,
		log:       log,
		now:       time.Now,
	}
}

func (s *DashboardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	contracts, err := s.contracts.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.annualBudget(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Budget:        dashboard.AggregateBudget(contracts, total),
		StatusSummary: dashboard.SummarizeStatuses(contracts),
		Alerts:        dashboard.ClassifyAlerts(contracts, s.now()),
	}, nil
}

// annualBudget reads the configured total; unset or unparsable means zero,
// which in turn pins the execution rate to zero.
func (s *DashboardService) annualBudget(ctx context.Context) (int64, error) {
	entry, err := s.configs.Get(ctx, model.ConfigKeyAnnualBudget)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	total, err := strconv.ParseInt(entry.Value, 10, 64)
	if err != nil {
		s.log.Warn().Str("value", entry.Value).Msg("annual budget is not numeric, treating as zero")
		return 0, nil
	}
	return total, nil
}
