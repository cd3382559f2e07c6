package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

// RegisterGenerator renders the contract register into one output format.
type RegisterGenerator interface {
	Generate(register model.Register) ([]byte, error)
}

// ExportResult is a finished document ready to send.
type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportService assembles the register snapshot and hands it to the
// format-specific generators.
type ExportService struct {
	contracts *ContractService
	dashboard *DashboardService
	excel     RegisterGenerator
	pdf       RegisterGenerator
	log       zerolog.Logger

	now func() time.Time
}

func NewExportService(
	contracts *ContractService,
	dashboard *DashboardService,
	excel RegisterGenerator,
	pdf RegisterGenerator,
	log zerolog.Logger,
) *ExportService {
	return &ExportService{
		contracts: contracts,
		dashboard: dashboard,
		excel:     excel,
		pdf:       pdf,
		log:       log,
		now:       time.Now,
	}
}

func (s *ExportService) GenerateExcel(ctx context.Context) (*ExportResult, error) {
	return s.generate(ctx, s.excel, "xlsx")
}

func (s *ExportService) GeneratePDF(ctx context.Context) (*ExportResult, error) {
	return s.generate(ctx, s.pdf, "pdf")
}

func (s *ExportService) generate(ctx context.Context, generator RegisterGenerator, ext string) (*ExportResult, error) {
	register, err := s.buildRegister(ctx)
	if err != nil {
		return nil, err
	}

	content, err := generator.Generate(*register)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("contracts-%s.%s", register.GeneratedAt.Format("20060102-1504"), ext)
	s.log.Info().Str("file", name).Int("contracts", len(register.Contracts)).Msg("register exported")
	return &ExportResult{FileName: name, Content: content}, nil
}

func (s *ExportService) buildRegister(ctx context.Context) (*model.Register, error) {
	contracts, err := s.contracts.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.dashboard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Register{
		GeneratedAt:   s.now(),
		Budget:        snapshot.Budget,
		StatusSummary: snapshot.StatusSummary,
		Contracts:     contracts,
	}, nil
}
