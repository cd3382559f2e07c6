package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/intent"
	"github.com/sgkim-dev/contract-desk/internal/korean"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/workflow"
)

const noteLogLimit = 100

type ContractService struct {
	contracts *repository.ContractRepository
	notes     *repository.NoteRepository
	logs      *repository.ChangeLogRepository
	configs   *repository.ConfigRepository
	log       zerolog.Logger

	now func() time.Time
}

func NewContractService(
	contracts *repository.ContractRepository,
	notes *repository.NoteRepository,
	logs *repository.ChangeLogRepository,
	configs *repository.ConfigRepository,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contracts: contracts,
		notes:     notes,
		logs:      logs,
		configs:   configs,
		log:       log,
		now:       time.Now,
	}
}

// CreateInput carries the fields accepted at creation. Category and Method
// fall back to 용역 / 일반경쟁 when empty.
type CreateInput struct {
	Title            string
	Category         model.Category
	Method           model.Method
	Amount           int64
	Budget           int64
	Requester        *string
	RequesterContact *string
	Contractor       *string
	Deadline         *time.Time
	RequestDate      *time.Time
	ContractStart    *time.Time
	ContractEnd      *time.Time
}

// UpdateInput carries partial updates; nil fields are left untouched.
// Stage moves are validated against the stage table, and setting the
// payment date completes the contract outright.
type UpdateInput struct {
	Title             *string
	Category          *model.Category
	Method            *model.Method
	Amount            *int64
	Budget            *int64
	ContractAmount    *int64
	ExecutionAmount   *int64
	Stage             *string
	Status            *model.Status
	Requester         *string
	RequesterContact  *string
	Contractor        *string
	Deadline          *time.Time
	RequestDate       *time.Time
	AnnouncementStart *time.Time
	AnnouncementEnd   *time.Time
	OpeningDate       *time.Time
	ContractStart     *time.Time
	ContractEnd       *time.Time
	PaymentDate       *time.Time
}

// ContractDetail bundles a contract with everything the detail view needs.
type ContractDetail struct {
	Contract model.Contract    `json:"contract"`
	History  []model.ChangeLog `json:"history"`
	Progress int               `json:"progress"`
	Stages   []string          `json:"stages"`
}

func (s *ContractService) Create(ctx context.Context, input CreateInput) (*model.Contract, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: 계약명은 필수입니다", ErrInvalidInput)
	}
	category := input.Category
	if category == "" {
		category = model.CategoryService
	}
	method := input.Method
	if method == "" {
		method = model.MethodOpenBid
	}

	id, err := s.nextContractID(ctx)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ID:               id,
		Title:            title,
		Category:         category,
		Method:           method,
		Amount:           input.Amount,
		Budget:           input.Budget,
		Stage:            workflow.InitialStage(method),
		Status:           model.StatusBeforeStart,
		Requester:        input.Requester,
		RequesterContact: input.RequesterContact,
		Contractor:       input.Contractor,
		Deadline:         input.Deadline,
		RequestDate:      input.RequestDate,
		ContractStart:    input.ContractStart,
		ContractEnd:      input.ContractEnd,
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}

	entry := model.ChangeLog{
		ContractID: &contract.ID,
		Action:     model.ActionCreate,
		Detail:     "계약 생성: " + title,
		ToValue:    &title,
	}
	if err := s.logs.Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.log.Info().Str("contract_id", contract.ID).Str("title", title).Msg("contract created")
	return contract, nil
}

// nextContractID assigns C{YY}-{NNN} from the per-year counter.
func (s *ContractService) nextContractID(ctx context.Context) (string, error) {
	year := s.now().Year()
	key := fmt.Sprintf("%s%d", model.ConfigKeyIDCounterPrefix, year)
	seq, err := s.configs.NextSequence(ctx, key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("C%02d-%03d", year%100, seq), nil
}

func (s *ContractService) Get(ctx context.Context, id string) (*ContractDetail, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return s.detail(ctx, contract)
}

// GetByRef resolves a chat reference, an exact ID or a title fragment.
func (s *ContractService) GetByRef(ctx context.Context, ref string) (*ContractDetail, error) {
	contract, err := s.contracts.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, ref)
		}
		return nil, err
	}
	return s.Get(ctx, contract.ID)
}

func (s *ContractService) detail(ctx context.Context, contract *model.Contract) (*ContractDetail, error) {
	history, err := s.logs.ListByContract(ctx, contract.ID)
	if err != nil {
		return nil, err
	}
	return &ContractDetail{
		Contract: *contract,
		History:  history,
		Progress: workflow.Progress(contract.Method, contract.Stage),
		Stages:   workflow.StagesFor(contract.Method),
	}, nil
}

func (s *ContractService) List(ctx context.Context, filter repository.ListFilter) ([]model.Contract, int64, error) {
	return s.contracts.List(ctx, filter)
}

func (s *ContractService) ListActive(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.ListActive(ctx)
}

func (s *ContractService) Update(ctx context.Context, id string, input UpdateInput) (*model.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, id)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	var entries []model.ChangeLog

	record := func(action model.Action, field, from, to string) {
		entries = append(entries, model.ChangeLog{
			ContractID: &contract.ID,
			Action:     action,
			Detail:     field + " 변경",
			FromValue:  strPtr(from),
			ToValue:    strPtr(to),
		})
	}

	if input.Title != nil && *input.Title != contract.Title {
		updates["title"] = *input.Title
		record(model.ActionUpdate, "계약명", contract.Title, *input.Title)
	}
	if input.Category != nil && *input.Category != contract.Category {
		updates["category"] = *input.Category
		record(model.ActionUpdate, "계약종류", contract.Category.Label(), input.Category.Label())
	}
	if input.Method != nil && *input.Method != contract.Method {
		updates["method"] = *input.Method
		record(model.ActionUpdate, "계약방식", contract.Method.Label(), input.Method.Label())
		contract.Method = *input.Method
	}

	if input.Amount != nil && *input.Amount != contract.Amount {
		updates["amount"] = *input.Amount
		record(model.ActionUpdate, "금액", korean.FormatAmount(contract.Amount), korean.FormatAmount(*input.Amount))
	}
	if input.Budget != nil && *input.Budget != contract.Budget {
		updates["budget"] = *input.Budget
		record(model.ActionBudget, "예산", korean.FormatAmount(contract.Budget), korean.FormatAmount(*input.Budget))
	}
	if input.ContractAmount != nil && *input.ContractAmount != contract.ContractAmount {
		updates["contract_amount"] = *input.ContractAmount
		record(model.ActionUpdate, "계약금액", korean.FormatAmount(contract.ContractAmount), korean.FormatAmount(*input.ContractAmount))
	}
	if input.ExecutionAmount != nil && *input.ExecutionAmount != contract.ExecutionAmount {
		updates["execution_amount"] = *input.ExecutionAmount
		record(model.ActionUpdate, "집행금액", korean.FormatAmount(contract.ExecutionAmount), korean.FormatAmount(*input.ExecutionAmount))
	}

	applyText := func(field, column string, current *string, next *string) {
		if next == nil {
			return
		}
		from := strOrNone(current)
		if from == *next {
			return
		}
		updates[column] = *next
		record(model.ActionUpdate, field, from, *next)
	}
	applyText("계약상대방", "contractor", contract.Contractor, input.Contractor)
	applyText("요청부서", "requester", contract.Requester, input.Requester)
	applyText("담당자 연락처", "requester_contact", contract.RequesterContact, input.RequesterContact)

	applyDate := func(field, column string, current *time.Time, next *time.Time) {
		if next == nil {
			return
		}
		from := dateOrNone(current)
		to := next.Format("2006-01-02")
		if from == to {
			return
		}
		updates[column] = *next
		record(model.ActionUpdate, field, from, to)
	}
	applyDate("마감일", "deadline", contract.Deadline, input.Deadline)
	applyDate("요청일", "request_date", contract.RequestDate, input.RequestDate)
	applyDate("공고시작일", "announcement_start", contract.AnnouncementStart, input.AnnouncementStart)
	applyDate("공고종료일", "announcement_end", contract.AnnouncementEnd, input.AnnouncementEnd)
	applyDate("개찰일", "opening_date", contract.OpeningDate, input.OpeningDate)
	applyDate("계약시작일", "contract_start", contract.ContractStart, input.ContractStart)
	applyDate("계약종료일", "contract_end", contract.ContractEnd, input.ContractEnd)

	if input.PaymentDate != nil {
		plan := workflow.PlanPaymentCompletion(contract, *input.PaymentDate)
		updates["payment_date"] = plan.PaymentDate
		updates["stage"] = plan.Stage
		updates["status"] = plan.Status
		for _, change := range plan.Changes {
			record(change.Action, change.Field, change.From, change.To)
		}
	} else if input.Stage != nil && *input.Stage != contract.Stage {
		plan, err := workflow.PlanStageChange(contract, *input.Stage)
		if err != nil {
			if errors.Is(err, workflow.ErrInvalidStage) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
			}
			return nil, err
		}
		updates["stage"] = plan.Stage
		if plan.Status != nil {
			updates["status"] = *plan.Status
		}
		for _, change := range plan.Changes {
			record(change.Action, change.Field, change.From, change.To)
		}
	}

	// An explicit status wins over anything a stage move derived.
	if input.Status != nil && *input.Status != contract.Status {
		updates["status"] = *input.Status
		record(model.ActionStatus, "상태", contract.Status.Label(), input.Status.Label())
	}

	if len(updates) == 0 {
		return nil, ErrNoChanges
	}

	updated, err := s.contracts.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if err := s.logs.CreateAll(ctx, entries); err != nil {
		return nil, err
	}

	s.log.Info().Str("contract_id", id).Int("fields", len(entries)).Msg("contract updated")
	return updated, nil
}

// Delete soft-deletes; the row and its history stay for the audit trail.
func (s *ContractService) Delete(ctx context.Context, id string) error {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, id)
		}
		return err
	}

	if _, err := s.contracts.Update(ctx, id, map[string]interface{}{
		"status": model.StatusDeleted,
	}); err != nil {
		return err
	}

	entry := model.ChangeLog{
		ContractID: &contract.ID,
		Action:     model.ActionDelete,
		Detail:     "계약 삭제: " + contract.Title,
		FromValue:  strPtr(string(contract.Status)),
		ToValue:    strPtr(string(model.StatusDeleted)),
	}
	if err := s.logs.Create(ctx, &entry); err != nil {
		return err
	}

	s.log.Info().Str("contract_id", id).Msg("contract deleted")
	return nil
}

// AddNote attaches a note; empty tags are auto-extracted from the content.
func (s *ContractService) AddNote(ctx context.Context, contractID, content string, tags []string) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: 메모 내용은 필수입니다", ErrInvalidInput)
	}

	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, contractID)
		}
		return nil, err
	}

	if len(tags) == 0 {
		tags = intent.ExtractTags(content)
	}

	note := &model.Note{
		ContractID: contract.ID,
		Content:    content,
		Tags:       tags,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	entry := model.ChangeLog{
		ContractID: &contract.ID,
		Action:     model.ActionNote,
		Detail:     "메모 추가",
		ToValue:    strPtr(truncate(content, noteLogLimit)),
	}
	if err := s.logs.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *ContractService) ListNotes(ctx context.Context, contractID string) ([]model.Note, error) {
	if _, err := s.contracts.FindByID(ctx, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 계약을 찾을 수 없습니다: %s", ErrNotFound, contractID)
		}
		return nil, err
	}
	return s.notes.ListByContract(ctx, contractID)
}

func strPtr(s string) *string { return &s }

func strOrNone(s *string) string {
	if s == nil || *s == "" {
		return "없음"
	}
	return *s
}

func dateOrNone(t *time.Time) string {
	if t == nil {
		return "없음"
	}
	return t.Format("2006-01-02")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
