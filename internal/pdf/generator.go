package pdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/sgkim-dev/contract-desk/internal/dashboard"
	"github.com/sgkim-dev/contract-desk/internal/korean"
	"github.com/sgkim-dev/contract-desk/internal/model"
)

type Generator struct {
	fontName string
	fontPath string
}

// NewGenerator checks the Korean-capable font file up front so a missing
// font fails at startup rather than on the first export.
func NewGenerator(fontPath string) (*Generator, error) {
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("pdf font not found at %s: %w", fontPath, err)
	}
	return &Generator{fontName: "NotoSansKR", fontPath: fontPath}, nil
}

// Generate renders the contract register as a landscape A4 document.
func (g *Generator) Generate(register model.Register) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.AddUTF8Font(g.fontName, "", g.fontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.fontPath)

	pdf.SetFont(g.fontName, "B", 15)
	pdf.CellFormat(0, 10, "계약 관리 대장", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("생성일시: %s", register.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	g.writeBudget(pdf, register.Budget)
	pdf.Ln(3)
	g.writeStatusSummary(pdf, register.StatusSummary)
	pdf.Ln(4)
	g.writeTable(pdf, register.Contracts)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeBudget(pdf *gofpdf.Fpdf, budget model.BudgetSummary) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, "예산 현황", "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("연간 예산: %s   배정액: %s   계약액: %s",
		korean.FormatAmount(budget.Total),
		korean.FormatAmount(budget.Allocated),
		korean.FormatAmount(budget.Contracted),
	), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("집행액: %s   잔액: %s   집행률: %.1f%%",
		korean.FormatAmount(budget.Executed),
		korean.FormatAmount(budget.Remaining),
		budget.ExecutionRate,
	), "", 1, "L", false, 0, "")
}

func (g *Generator) writeStatusSummary(pdf *gofpdf.Fpdf, summary map[string]model.StatusSummary) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, "상태별 현황", "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	for _, status := range model.LiveStatuses {
		label := status.Label()
		entry := summary[label]
		pdf.CellFormat(52, 5, fmt.Sprintf("%s: %d건 / %s", label, entry.Count, korean.FormatAmount(entry.Amount)), "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func (g *Generator) writeTable(pdf *gofpdf.Fpdf, contracts []model.Contract) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, "계약 목록", "", 1, "L", false, 0, "")

	headers := []string{"계약번호", "계약명", "계약방식", "단계", "상태", "예산", "집행금액", "마감일"}
	widths := []float64{22, 80, 24, 24, 20, 36, 36, 26}
	g.drawRow(pdf, headers, widths, true)

	for _, c := range contracts {
		row := []string{
			c.ID,
			c.Title,
			c.Method.Label(),
			c.Stage,
			c.Status.Label(),
			korean.FormatAmount(dashboard.DisplayAmount(c)),
			korean.FormatAmount(c.ExecutionAmount),
			formatDate(c.Deadline),
		}
		g.drawRow(pdf, row, widths, false)
	}
}

func (g *Generator) drawRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i >= 5 && i <= 6 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
