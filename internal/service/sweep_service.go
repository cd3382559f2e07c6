package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/workflow"
)

// SweepService flags signed contracts whose end date slipped past without
// completion. It runs from the cron schedule and from the manual trigger
// endpoint.
type SweepService struct {
	contracts *repository.ContractRepository
	logs      *repository.ChangeLogRepository
	log       zerolog.Logger

	now func() time.Time
}

func NewSweepService(
	contracts *repository.ContractRepository,
	logs *repository.ChangeLogRepository,
	log zerolog.Logger,
) *SweepService {
	return &SweepService{
		contracts: contracts,
		logs:      logs,
		log:       log,
		now:       time.Now,
	}
}

// MarkOverdue moves every overdue signed contract to DELAYED and returns the
// affected IDs. Already delayed, completed and deleted contracts are skipped
// by the query, so repeated runs are harmless.
func (s *SweepService) MarkOverdue(ctx context.Context) ([]string, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	overdue, err := s.contracts.ListOverdue(ctx, workflow.SignedStage, today)
	if err != nil {
		return nil, err
	}

	flagged := make([]string, 0, len(overdue))
	for _, contract := range overdue {
		if _, err := s.contracts.Update(ctx, contract.ID, map[string]interface{}{
			"status": model.StatusDelayed,
		}); err != nil {
			return flagged, err
		}

		entry := model.ChangeLog{
			ContractID: &contract.ID,
			Action:     model.ActionStatus,
			Detail:     "계약종료일 경과로 자동 지연 처리",
			FromValue:  strPtr(string(contract.Status)),
			ToValue:    strPtr(string(model.StatusDelayed)),
		}
		if err := s.logs.Create(ctx, &entry); err != nil {
			return flagged, err
		}
		flagged = append(flagged, contract.ID)
	}

	if len(flagged) > 0 {
		s.log.Info().Strs("contract_ids", flagged).Msg("overdue contracts marked delayed")
	}
	return flagged, nil
}
