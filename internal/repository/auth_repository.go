package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Get returns the stored credential, or gorm.ErrRecordNotFound when no PIN
// has been set up yet.
func (r *AuthRepository) Get(ctx context.Context) (*model.AuthCredential, error) {
	var cred model.AuthCredential
	if err := r.db.WithContext(ctx).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *AuthRepository) Create(ctx context.Context, pinHash string) error {
	return r.db.WithContext(ctx).Create(&model.AuthCredential{PINHash: pinHash}).Error
}
