package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hackmate/assistant"
	"hackmate/config"
	"hackmate/knowledge"
	"hackmate/llmclient"
	"hackmate/web"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	// The knowledge tables are built once here and injected everywhere;
	// they are read-only for the life of the process.
	store := knowledge.NewDefaultStore(cfg.HackathonName, cfg.HackathonTheme, cfg.HackathonDuration)
	logger.Info("Knowledge base loaded",
		zap.Int("snippets", len(store.Snippets())),
		zap.Int("faqs", len(store.FAQs())),
		zap.String("event", store.Resources().Hackathon.Name))

	llm := llmclient.New(cfg, logger)
	hackAssistant := assistant.New(cfg, llm, store, logger)

	webServer := web.NewServer(hackAssistant, store, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting hackathon assistant backend", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
