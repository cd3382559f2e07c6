package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(ctx context.Context, key string) (*model.ConfigEntry, error) {
	var entry model.ConfigEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ConfigRepository) All(ctx context.Context) (map[string]string, error) {
	var entries []model.ConfigEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.Key] = entry.Value
	}
	return result, nil
}

func (r *ConfigRepository) Upsert(ctx context.Context, key, value string) error {
	entry := model.ConfigEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// NextSequence atomically hands out the next counter value for key. The row
// holds the next number to assign, starting at 1; the UPDATE takes the row
// lock, so concurrent callers serialize instead of racing a read-then-write.
func (r *ConfigRepository) NextSequence(ctx context.Context, key string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := model.ConfigEntry{Key: key, Value: "1"}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.ConfigEntry{}).
			Where("key = ?", key).
			Update("value", gorm.Expr("CAST(CAST(value AS INTEGER) + 1 AS VARCHAR)")).Error; err != nil {
			return err
		}

		var entry model.ConfigEntry
		if err := tx.Where("key = ?", key).First(&entry).Error; err != nil {
			return err
		}
		assigned, err := strconv.Atoi(entry.Value)
		if err != nil {
			return err
		}
		next = assigned - 1
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}
