package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

// indexStatements cover lookups AutoMigrate's tag-level indexes miss.
var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_contracts_updated_at ON contracts (updated_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_change_logs_contract_created ON change_logs (contract_id, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_notes_contract_created ON notes (contract_id, created_at DESC);`,
}

// Migrate creates or updates the schema for every model.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&model.Contract{},
		&model.Note{},
		&model.ChangeLog{},
		&model.ConfigEntry{},
		&model.AuthCredential{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for i, stmt := range indexStatements {
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
