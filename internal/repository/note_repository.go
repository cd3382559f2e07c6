package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// ListByContract returns a contract's notes newest first.
func (r *NoteRepository) ListByContract(ctx context.Context, contractID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
