package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/intent"
	"github.com/sgkim-dev/contract-desk/internal/korean"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/service"
)

// Dispatcher executes tool calls against the services. Execute never returns
// a Go error; failures become {"success": false, "error": ...} payloads so
// the model can relay them.
type Dispatcher struct {
	contracts *service.ContractService
	configs   *service.ConfigService
	log       zerolog.Logger
}

func NewDispatcher(contracts *service.ContractService, configs *service.ConfigService, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{contracts: contracts, configs: configs, log: log}
}

func (d *Dispatcher) Execute(ctx context.Context, name, args string) string {
	var result any
	var err error

	switch name {
	case "createContract":
		result, err = d.createContract(ctx, args)
	case "listContracts":
		result, err = d.listContracts(ctx, args)
	case "getContract":
		result, err = d.getContract(ctx, args)
	case "updateContract":
		result, err = d.updateContract(ctx, args)
	case "addNote":
		result, err = d.addNote(ctx, args)
	case "deleteContract":
		result, err = d.deleteContract(ctx, args)
	case "setBudget":
		result, err = d.setBudget(ctx, args)
	default:
		err = errors.New("알 수 없는 도구입니다: " + name)
	}

	if err != nil {
		d.log.Warn().Str("tool", name).Err(err).Msg("tool call failed")
		return marshal(map[string]any{"success": false, "error": err.Error()})
	}
	return marshal(result)
}

type createArgs struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
	Budget        string `json:"budget"`
	Requester     string `json:"requester"`
	Contractor    string `json:"contractor"`
	Deadline      string `json:"deadline"`
	ContractStart string `json:"contractStart"`
	ContractEnd   string `json:"contractEnd"`
}

func (d *Dispatcher) createContract(ctx context.Context, args string) (any, error) {
	var a createArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	input := service.CreateInput{
		Title:         a.Title,
		Requester:     optional(a.Requester),
		Contractor:    optional(a.Contractor),
		Deadline:      parseDate(a.Deadline),
		ContractStart: parseDate(a.ContractStart),
		ContractEnd:   parseDate(a.ContractEnd),
	}
	if a.Category != "" {
		input.Category = intent.MapCategory(a.Category)
	}
	if a.Method != "" {
		input.Method = intent.MapMethod(a.Method)
	}
	if amount, ok := korean.ParseAmount(a.Amount); ok {
		input.Amount = amount
	}
	if budget, ok := korean.ParseAmount(a.Budget); ok {
		input.Budget = budget
	}

	contract, err := d.contracts.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"success":  true,
		"message":  "계약 " + contract.ID + "이(가) 생성되었습니다.",
		"contract": summarize(*contract),
	}, nil
}

type listArgs struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Limit    int    `json:"limit"`
}

func (d *Dispatcher) listContracts(ctx context.Context, args string) (any, error) {
	var a listArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	filter := repository.ListFilter{Search: a.Search, Limit: a.Limit}
	if a.Status != "" {
		status := intent.MapStatus(a.Status)
		filter.Status = &status
	}
	if a.Category != "" {
		category := intent.MapCategory(a.Category)
		filter.Category = &category
	}

	contracts, total, err := d.contracts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, len(contracts))
	for i, c := range contracts {
		items[i] = summarize(c)
	}
	return map[string]any{"success": true, "total": total, "contracts": items}, nil
}

type refArgs struct {
	Ref string `json:"ref"`
}

func (d *Dispatcher) getContract(ctx context.Context, args string) (any, error) {
	var a refArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	detail, err := d.contracts.GetByRef(ctx, a.Ref)
	if err != nil {
		return nil, err
	}

	c := detail.Contract
	notes := make([]map[string]any, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = map[string]any{
			"content":   n.Content,
			"tags":      n.Tags,
			"createdAt": n.CreatedAt.Format("2006-01-02"),
		}
	}
	return map[string]any{
		"success":  true,
		"contract": summarize(c),
		"progress": detail.Progress,
		"stages":   detail.Stages,
		"notes":    notes,
	}, nil
}

type updateArgs struct {
	Ref             string `json:"ref"`
	Title           string `json:"title"`
	Stage           string `json:"stage"`
	Status          string `json:"status"`
	Amount          string `json:"amount"`
	Budget          string `json:"budget"`
	ContractAmount  string `json:"contractAmount"`
	ExecutionAmount string `json:"executionAmount"`
	Contractor      string `json:"contractor"`
	Requester       string `json:"requester"`
	Deadline        string `json:"deadline"`
	ContractStart   string `json:"contractStart"`
	ContractEnd     string `json:"contractEnd"`
	PaymentDate     string `json:"paymentDate"`
}

func (d *Dispatcher) updateContract(ctx context.Context, args string) (any, error) {
	var a updateArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	detail, err := d.contracts.GetByRef(ctx, a.Ref)
	if err != nil {
		return nil, err
	}

	input := service.UpdateInput{
		Title:         optional(a.Title),
		Stage:         optional(a.Stage),
		Contractor:    optional(a.Contractor),
		Requester:     optional(a.Requester),
		Deadline:      parseDate(a.Deadline),
		ContractStart: parseDate(a.ContractStart),
		ContractEnd:   parseDate(a.ContractEnd),
		PaymentDate:   parseDate(a.PaymentDate),
	}
	if a.Status != "" {
		status := intent.MapStatus(a.Status)
		input.Status = &status
	}
	if amount, ok := korean.ParseAmount(a.Amount); ok {
		input.Amount = &amount
	}
	if budget, ok := korean.ParseAmount(a.Budget); ok {
		input.Budget = &budget
	}
	if amount, ok := korean.ParseAmount(a.ContractAmount); ok {
		input.ContractAmount = &amount
	}
	if amount, ok := korean.ParseAmount(a.ExecutionAmount); ok {
		input.ExecutionAmount = &amount
	}

	updated, err := d.contracts.Update(ctx, detail.Contract.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrNoChanges) {
			return map[string]any{"success": true, "message": "변경된 내용이 없습니다."}, nil
		}
		return nil, err
	}
	return map[string]any{
		"success":  true,
		"message":  "계약 " + updated.ID + "이(가) 수정되었습니다.",
		"contract": summarize(*updated),
	}, nil
}

type noteArgs struct {
	Ref     string   `json:"ref"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (d *Dispatcher) addNote(ctx context.Context, args string) (any, error) {
	var a noteArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	detail, err := d.contracts.GetByRef(ctx, a.Ref)
	if err != nil {
		return nil, err
	}

	note, err := d.contracts.AddNote(ctx, detail.Contract.ID, a.Content, a.Tags)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"success": true,
		"message": "계약 " + detail.Contract.ID + "에 메모가 추가되었습니다.",
		"tags":    note.Tags,
	}, nil
}

type deleteArgs struct {
	Ref     string `json:"ref"`
	Confirm bool   `json:"confirm"`
}

func (d *Dispatcher) deleteContract(ctx context.Context, args string) (any, error) {
	var a deleteArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	detail, err := d.contracts.GetByRef(ctx, a.Ref)
	if err != nil {
		return nil, err
	}
	contract := detail.Contract

	if !a.Confirm {
		return map[string]any{
			"success":          false,
			"needConfirmation": true,
			"message":          "계약 " + contract.ID + " (" + contract.Title + ")을(를) 삭제할까요?",
		}, nil
	}

	if err := d.contracts.Delete(ctx, contract.ID); err != nil {
		return nil, err
	}
	return map[string]any{
		"success": true,
		"message": "계약 " + contract.ID + "이(가) 삭제되었습니다.",
	}, nil
}

type budgetArgs struct {
	Amount string `json:"amount"`
}

func (d *Dispatcher) setBudget(ctx context.Context, args string) (any, error) {
	var a budgetArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return nil, err
	}

	amount, ok := korean.ParseAmount(a.Amount)
	if !ok {
		return nil, errors.New("금액을 해석할 수 없습니다: " + a.Amount)
	}
	if err := d.configs.SetAnnualBudget(ctx, amount); err != nil {
		return nil, err
	}
	return map[string]any{
		"success": true,
		"message": "연간 예산이 " + korean.FormatAmountShort(amount) + "으로 설정되었습니다.",
	}, nil
}

// summarize is the compact contract view handed back to the model.
func summarize(c model.Contract) map[string]any {
	return map[string]any{
		"id":       c.ID,
		"title":    c.Title,
		"category": c.Category.Label(),
		"method":   c.Method.Label(),
		"stage":    c.Stage,
		"status":   c.Status.Label(),
		"amount":   korean.FormatAmount(c.Amount),
		"budget":   korean.FormatAmount(c.Budget),
		"deadline": dateString(c.Deadline),
	}
}

func marshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"success":false,"error":"결과 직렬화에 실패했습니다"}`
	}
	return string(data)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
