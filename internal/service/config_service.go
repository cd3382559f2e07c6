package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/korean"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
)

type ConfigService struct {
	configs *repository.ConfigRepository
	logs    *repository.ChangeLogRepository
	log     zerolog.Logger
}

func NewConfigService(
	configs *repository.ConfigRepository,
	logs *repository.ChangeLogRepository,
	log zerolog.Logger,
) *ConfigService {
	return &ConfigService{configs: configs, logs: logs, log: log}
}

func (s *ConfigService) Get(ctx context.Context, key string) (string, error) {
	entry, err := s.configs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: 설정을 찾을 수 없습니다: %s", ErrNotFound, key)
		}
		return "", err
	}
	return entry.Value, nil
}

func (s *ConfigService) All(ctx context.Context) (map[string]string, error) {
	return s.configs.All(ctx)
}

// Set stores a key; annual budget changes are audited as a contract-less
// changelog entry.
func (s *ConfigService) Set(ctx context.Context, key, value string) error {
	var previous *string
	if key == model.ConfigKeyAnnualBudget {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("%w: 예산은 정수여야 합니다: %s", ErrInvalidInput, value)
		}
		if entry, err := s.configs.Get(ctx, key); err == nil {
			previous = &entry.Value
		}
	}

	if err := s.configs.Upsert(ctx, key, value); err != nil {
		return err
	}

	if key == model.ConfigKeyAnnualBudget {
		entry := model.ChangeLog{
			Action:    model.ActionBudget,
			Detail:    "연간 예산 설정",
			FromValue: previous,
			ToValue:   &value,
		}
		if err := s.logs.Create(ctx, &entry); err != nil {
			return err
		}
		s.log.Info().Str("value", value).Msg("annual budget updated")
	}
	return nil
}

// SetAnnualBudget is the chat-facing variant taking won directly.
func (s *ConfigService) SetAnnualBudget(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: 예산은 0보다 커야 합니다: %s",
			ErrInvalidInput, korean.FormatAmount(amount))
	}
	return s.Set(ctx, model.ConfigKeyAnnualBudget, strconv.FormatInt(amount, 10))
}
