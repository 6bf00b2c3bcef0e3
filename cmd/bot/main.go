package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoopmania/internal/config"
	"hoopmania/internal/handler"
	"hoopmania/internal/middleware"
	"hoopmania/internal/repository/jsonfile"
	"hoopmania/internal/service"
	"hoopmania/internal/session"
	"hoopmania/internal/telegram"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Hoop Mania bot")

	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.Int64s("admin_ids", cfg.AdminIDs),
		zap.String("shop", cfg.Shop.Name),
	)

	// Open the JSON file store
	store, err := jsonfile.New(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}

	logger.Info("Store loaded",
		zap.Int("users", store.CountUsers()),
		zap.Int("orders", store.CountOrders()),
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	sessions := session.NewManager()
	stats := service.NewStats(logger)
	msgr := telegram.NewClient(bot, logger)
	orders := service.NewOrderService(sessions, store, logger)
	broadcaster := service.NewBroadcaster(sessions, store, msgr, cfg.BroadcastDelay, logger)
	notifier := service.NewNotifier(store, msgr, cfg.AdminIDs, cfg.Shop.Name, logger)

	// Initialize handler
	bot.Use(middleware.Recover(logger, stats, sessions))

	h := handler.NewHandler(bot, cfg, store, orders, broadcaster, notifier, stats, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Best-effort statistics snapshot, then graceful shutdown
	if err := stats.WriteSnapshot(cfg.StatsFile); err != nil {
		logger.Error("Failed to save statistics snapshot", zap.Error(err))
	}

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}
