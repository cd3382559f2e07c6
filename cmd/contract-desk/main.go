package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/sgkim-dev/contract-desk/internal/chat"
	"github.com/sgkim-dev/contract-desk/internal/config"
	"github.com/sgkim-dev/contract-desk/internal/db"
	"github.com/sgkim-dev/contract-desk/internal/excel"
	httphandler "github.com/sgkim-dev/contract-desk/internal/http"
	"github.com/sgkim-dev/contract-desk/internal/logger"
	"github.com/sgkim-dev/contract-desk/internal/pdf"
	"github.com/sgkim-dev/contract-desk/internal/ratelimit"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/scheduler"
	"github.com/sgkim-dev/contract-desk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	noteRepo := repository.NewNoteRepository(database)
	changelogRepo := repository.NewChangeLogRepository(database)
	configRepo := repository.NewConfigRepository(database)
	authRepo := repository.NewAuthRepository(database)

	limiter := ratelimit.NewMemoryLimiter(
		cfg.Auth.MaxPINAttempts,
		time.Duration(cfg.Auth.LockoutMinutes)*time.Minute,
	)

	contractService := service.NewContractService(contractRepo, noteRepo, changelogRepo, configRepo, log)
	dashboardService := service.NewDashboardService(contractRepo, configRepo, log)
	configService := service.NewConfigService(configRepo, changelogRepo, log)
	authService := service.NewAuthService(authRepo, limiter, log)
	sweepService := service.NewSweepService(contractRepo, changelogRepo, log)

	pdfGenerator, err := pdf.NewGenerator(cfg.Export.PDFFontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	exportService := service.NewExportService(
		contractService, dashboardService, excel.NewGenerator(), pdfGenerator, log,
	)

	openaiClient := openai.NewClient(cfg.Chat.APIKey)
	dispatcher := chat.NewDispatcher(contractService, configService, log)
	chatService := chat.NewService(
		openaiClient, cfg.Chat.Model, cfg.Chat.HistoryWindow, cfg.Chat.MaxToolRounds, dispatcher, log,
	)

	handler := httphandler.NewHandler(
		contractService, dashboardService, configService, authService,
		sweepService, exportService, chatService, cfg.Sweep.Secret, log,
	)
	router := httphandler.NewRouter(handler, cfg)

	sched := scheduler.New(sweepService, log)
	if err := sched.Start(cfg.Sweep.CronSpec); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contract desk")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
