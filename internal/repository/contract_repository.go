package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ListFilter narrows and pages the contract listing. Deleted contracts are
// always excluded.
type ListFilter struct {
	Status   *model.Status
	Category *model.Category
	Method   *model.Method
	Search   string
	Sort     string
	Order    string
	Limit    int
	Offset   int
}

var sortColumns = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"deadline":  "deadline",
	"amount":    "amount",
}

// Create inserts a new contract row.
func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

// FindByID loads one live contract with its notes, newest first.
func (r *ContractRepository) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ? AND status <> ?", id, model.StatusDeleted).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// FindByRef resolves a chat reference: an exact ID or a title fragment.
func (r *ContractRepository) FindByRef(ctx context.Context, ref string) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.StatusDeleted).
		Where("id = ? OR title LIKE ?", ref, "%"+ref+"%").
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// List returns the filtered page plus the total match count.
func (r *ContractRepository) List(ctx context.Context, f ListFilter) ([]model.Contract, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Contract{}).
		Where("status <> ?", model.StatusDeleted)

	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Category != nil {
		query = query.Where("category = ?", *f.Category)
	}
	if f.Method != nil {
		query = query.Where("method = ?", *f.Method)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(
			"title LIKE ? OR requester LIKE ? OR contractor LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.Sort]
	if !ok {
		column = "updated_at"
	}
	direction := "DESC"
	if f.Order == "asc" {
		direction = "ASC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	var contracts []model.Contract
	err := query.
		Order(column + " " + direction).
		Limit(limit).
		Offset(f.Offset).
		Find(&contracts).Error
	if err != nil {
		return nil, 0, err
	}
	return contracts, total, nil
}

// ListActive returns every live contract; the dashboard and exports work on
// the full set.
func (r *ContractRepository) ListActive(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.StatusDeleted).
		Order("updated_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// ListOverdue finds contracts stuck at the given stage past their contract
// end date that are neither finished, deleted nor already flagged.
func (r *ContractRepository) ListOverdue(ctx context.Context, stage string, before time.Time) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("stage = ?", stage).
		Where("contract_end < ?", before).
		Where("status NOT IN ?", []model.Status{
			model.StatusCompleted, model.StatusDeleted, model.StatusDelayed,
		}).
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// Update applies the column map and returns the fresh row.
func (r *ContractRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Contract, error) {
	if err := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	var contract model.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}
