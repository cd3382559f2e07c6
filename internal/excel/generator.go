package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sgkim-dev/contract-desk/internal/dashboard"
	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/workflow"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the two-sheet contract register workbook: the budget and
// status summary first, then the full listing.
func (g *Generator) Generate(register model.Register) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "요약"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, register); err != nil {
		return nil, err
	}

	listSheet := "계약 목록"
	file.NewSheet(listSheet)
	if err := g.writeRegister(file, listSheet, register); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, register model.Register) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "계약 관리 대장")
	set("A2", "생성일시")
	set("B2", register.GeneratedAt.Format("2006-01-02 15:04"))

	set("A4", "연간 예산")
	set("B4", register.Budget.Total)
	set("A5", "배정액")
	set("B5", register.Budget.Allocated)
	set("A6", "계약액")
	set("B6", register.Budget.Contracted)
	set("A7", "집행액")
	set("B7", register.Budget.Executed)
	set("A8", "잔액")
	set("B8", register.Budget.Remaining)
	set("A9", "집행률")
	set("B9", fmt.Sprintf("%.1f%%", register.Budget.ExecutionRate))

	tableRow := 11
	set(fmt.Sprintf("A%d", tableRow), "상태")
	set(fmt.Sprintf("B%d", tableRow), "건수")
	set(fmt.Sprintf("C%d", tableRow), "금액")

	for i, status := range model.LiveStatuses {
		label := status.Label()
		entry := register.StatusSummary[label]
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), label)
		set(fmt.Sprintf("B%d", row), entry.Count)
		set(fmt.Sprintf("C%d", row), entry.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	return nil
}

func (g *Generator) writeRegister(file *excelize.File, sheet string, register model.Register) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"계약번호",
		"계약명",
		"계약종류",
		"계약방식",
		"단계",
		"상태",
		"진행률",
		"예산",
		"계약금액",
		"집행금액",
		"요청부서",
		"계약상대방",
		"마감일",
		"계약기간",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, c := range register.Contracts {
		row := i + 2
		set(fmt.Sprintf("A%d", row), c.ID)
		set(fmt.Sprintf("B%d", row), c.Title)
		set(fmt.Sprintf("C%d", row), c.Category.Label())
		set(fmt.Sprintf("D%d", row), c.Method.Label())
		set(fmt.Sprintf("E%d", row), c.Stage)
		set(fmt.Sprintf("F%d", row), c.Status.Label())
		set(fmt.Sprintf("G%d", row), fmt.Sprintf("%d%%", workflow.Progress(c.Method, c.Stage)))
		set(fmt.Sprintf("H%d", row), dashboard.DisplayAmount(c))
		set(fmt.Sprintf("I%d", row), c.ContractAmount)
		set(fmt.Sprintf("J%d", row), c.ExecutionAmount)
		set(fmt.Sprintf("K%d", row), formatString(c.Requester))
		set(fmt.Sprintf("L%d", row), formatString(c.Contractor))
		set(fmt.Sprintf("M%d", row), formatDate(c.Deadline))
		set(fmt.Sprintf("N%d", row), formatPeriod(c.ContractStart, c.ContractEnd))
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "F", 12)
	_ = file.SetColWidth(sheet, "G", "G", 8)
	_ = file.SetColWidth(sheet, "H", "J", 16)
	_ = file.SetColWidth(sheet, "K", "L", 20)
	_ = file.SetColWidth(sheet, "M", "N", 22)
	return nil
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatPeriod(start, end *time.Time) string {
	if start == nil && end == nil {
		return ""
	}
	return fmt.Sprintf("%s ~ %s", formatDate(start), formatDate(end))
}
