package chat

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/service"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
		&model.Contract{},
		&model.Note{},
		&model.ChangeLog{},
		&model.ConfigEntry{},
		&model.AuthCredential{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	contractRepo := repository.NewContractRepository(database)
	noteRepo := repository.NewNoteRepository(database)
	changelogRepo := repository.NewChangeLogRepository(database)
	configRepo := repository.NewConfigRepository(database)

	contracts := service.NewContractService(contractRepo, noteRepo, changelogRepo, configRepo, zerolog.Nop())
	configs := service.NewConfigService(configRepo, changelogRepo, zerolog.Nop())
	return NewDispatcher(contracts, configs, zerolog.Nop())
}

func execute(t *testing.T, d *Dispatcher, name, args string) map[string]any {
	t.Helper()

	raw := d.Execute(context.Background(), name, args)
	var result map[string]any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("result is not JSON: %v\n%s", err, raw)
	}
	return result
}

func TestDispatcherCreateContract(t *testing.T) {
	d := newTestDispatcher(t)

	result := execute(t, d, "createContract", `{
		"title": "사무용품 구매",
		"category": "물품 구매",
		"method": "수의계약",
		"amount": "5천만원"
	}`)

	if result["success"] != true {
		t.Fatalf("result = %v", result)
	}
	contract := result["contract"].(map[string]any)
	if contract["category"] != "물품(구매)" {
		t.Errorf("category = %v", contract["category"])
	}
	if contract["method"] != "비공개수의" {
		t.Errorf("method = %v", contract["method"])
	}
	if contract["amount"] != "₩50,000,000" {
		t.Errorf("amount = %v", contract["amount"])
	}
	if contract["stage"] != "계약준비" {
		t.Errorf("stage = %v", contract["stage"])
	}
}

func TestDispatcherCreateContractRequiresTitle(t *testing.T) {
	d := newTestDispatcher(t)

	result := execute(t, d, "createContract", `{"title": ""}`)
	if result["success"] != false {
		t.Fatalf("result = %v", result)
	}
	if result["error"] == "" {
		t.Error("error message missing")
	}
}

func TestDispatcherListAndGet(t *testing.T) {
	d := newTestDispatcher(t)

	execute(t, d, "createContract", `{"title": "경비 용역"}`)
	execute(t, d, "createContract", `{"title": "청소 용역"}`)

	list := execute(t, d, "listContracts", `{"search": "청소"}`)
	if list["success"] != true || list["total"].(float64) != 1 {
		t.Fatalf("list = %v", list)
	}

	got := execute(t, d, "getContract", `{"ref": "경비"}`)
	if got["success"] != true {
		t.Fatalf("get = %v", got)
	}
	contract := got["contract"].(map[string]any)
	if contract["title"] != "경비 용역" {
		t.Errorf("title = %v", contract["title"])
	}
}

func TestDispatcherUpdateContractStage(t *testing.T) {
	d := newTestDispatcher(t)

	created := execute(t, d, "createContract", `{"title": "전산장비"}`)
	id := created["contract"].(map[string]any)["id"].(string)

	result := execute(t, d, "updateContract", `{"ref": "`+id+`", "stage": "공고중"}`)
	if result["success"] != true {
		t.Fatalf("update = %v", result)
	}
	contract := result["contract"].(map[string]any)
	if contract["stage"] != "공고중" || contract["status"] != "진행 중" {
		t.Errorf("contract = %v", contract)
	}
}

func TestDispatcherDeleteNeedsConfirmation(t *testing.T) {
	d := newTestDispatcher(t)

	execute(t, d, "createContract", `{"title": "삭제 대상"}`)

	first := execute(t, d, "deleteContract", `{"ref": "삭제 대상"}`)
	if first["success"] != false || first["needConfirmation"] != true {
		t.Fatalf("unconfirmed delete = %v", first)
	}

	second := execute(t, d, "deleteContract", `{"ref": "삭제 대상", "confirm": true}`)
	if second["success"] != true {
		t.Fatalf("confirmed delete = %v", second)
	}

	missing := execute(t, d, "getContract", `{"ref": "삭제 대상"}`)
	if missing["success"] != false {
		t.Errorf("deleted contract still resolvable: %v", missing)
	}
}

func TestDispatcherAddNote(t *testing.T) {
	d := newTestDispatcher(t)

	execute(t, d, "createContract", `{"title": "유지보수"}`)

	result := execute(t, d, "addNote", `{"ref": "유지보수", "content": "견적 검토 요청"}`)
	if result["success"] != true {
		t.Fatalf("addNote = %v", result)
	}
	tags := result["tags"].([]any)
	if len(tags) != 3 {
		t.Errorf("tags = %v, want 검토/요청/견적", tags)
	}
}

func TestDispatcherSetBudget(t *testing.T) {
	d := newTestDispatcher(t)

	result := execute(t, d, "setBudget", `{"amount": "10억"}`)
	if result["success"] != true {
		t.Fatalf("setBudget = %v", result)
	}

	bad := execute(t, d, "setBudget", `{"amount": "많이"}`)
	if bad["success"] != false {
		t.Fatalf("unparsable amount = %v", bad)
	}
}

func TestDispatcherUnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	result := execute(t, d, "notATool", `{}`)
	if result["success"] != false {
		t.Fatalf("result = %v", result)
	}
}
