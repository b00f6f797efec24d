package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meeting-action-extractor/config"
	_ "meeting-action-extractor/docs" // Swagger docs
	actionHTTP "meeting-action-extractor/internal/action/delivery/http"
	tgDelivery "meeting-action-extractor/internal/action/delivery/telegram"
	"meeting-action-extractor/internal/action/usecase"
	"meeting-action-extractor/internal/httpserver"
	"meeting-action-extractor/internal/middleware"
	"meeting-action-extractor/internal/ruleengine"
	"meeting-action-extractor/pkg/datemath"
	"meeting-action-extractor/pkg/gcalendar"
	"meeting-action-extractor/pkg/llmprovider"
	"meeting-action-extractor/pkg/log"
	"meeting-action-extractor/pkg/telegram"
)

// @title       Meeting Action Extractor API
// @description Rule-based extraction of action items from meeting notes, with optional LLM backends, export formats, and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Action Extractor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction backends
	engine := ruleengine.New()

	timezone := cfg.Extract.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// LLM provider chain (optional, the rule engine works without it)
	var llmManager *llmprovider.Manager
	if providers, provErr := llmprovider.InitializeProviders(&cfg.LLM); provErr != nil {
		logger.Warnf(ctx, "LLM providers unavailable, extraction runs rule-based only: %v", provErr)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		llmManager = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTimeout,
		}, logger)
		logger.Infof(ctx, "LLM provider chain initialized with %d provider(s)", len(providers))
	}

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Action domain
	actionUC := usecase.New(logger, engine, llmManager, calendarClient, cfg.GoogleCalendar.CalendarID, dateMathParser, timezone, cfg.Extract.CacheSize)
	actionHandler := actionHTTP.New(logger, actionUC)

	// Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, actionUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot token not configured, webhook disabled")
	}

	// 5. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ActionHandler:   actionHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
