package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

type ChangeLogRepository struct {
	db *gorm.DB
}

func NewChangeLogRepository(db *gorm.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

func (r *ChangeLogRepository) Create(ctx context.Context, entry *model.ChangeLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateAll appends a batch of audit entries in order.
func (r *ChangeLogRepository) CreateAll(ctx context.Context, entries []model.ChangeLog) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// ListByContract returns a contract's full history, newest first. Deleted
// contracts keep their history; callers decide whether to expose it.
func (r *ChangeLogRepository) ListByContract(ctx context.Context, contractID string) ([]model.ChangeLog, error) {
	var entries []model.ChangeLog
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
