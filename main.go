package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"dexbar/internal/catalog"
	"dexbar/internal/config"
	"dexbar/internal/eventbus"
	"dexbar/internal/logging"
	"dexbar/internal/search"
	"dexbar/internal/ui"
)

func main() {
	var configPath, logPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&logPath, "log", "", "Path to log file (overrides config)")
	flag.Parse()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, cfgErr := loadOrCreateConfig(configSvc)

	if logPath != "" {
		cfg.Log.File = logPath
	}
	logger, logCloser, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}
	log.SetDefault(logger)
	if cfgErr != nil {
		logger.Error("config problem, using defaults", "path", configSvc.Path(), "err", cfgErr)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.NewWithLogger(logger)
	defer bus.Close()

	bus.Subscribe(eventbus.EventEntitySelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.EntitySelectedEvent); ok {
			logger.Info("entity selected", "id", event.Entity.ID, "name", event.Entity.DisplayName, "history", event.HistoryDepth)
		}
	})
	bus.Subscribe(eventbus.EventSearchCancelled, func(eventbus.DomainEvent) {
		logger.Info("search cancelled")
	})

	store := search.NewStore(catalog.Sample(),
		search.WithHistoryLimit(cfg.Search.HistoryLimit),
		search.WithBus(bus),
		search.WithLogger(logger),
	)

	uiModel := ui.NewModel(store, cfg, logger)
	defer uiModel.Close()

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	if os.Getenv("DEXBAR_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	logger.Info("starting UI", "entities", catalog.Sample().Len())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("error running program", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally")
}

// loadOrCreateConfig loads the config, writing defaults when no file exists
func loadOrCreateConfig(svc config.ConfigService) (*config.Config, error) {
	cfg, err := svc.LoadFromPath(svc.Path())
	if err == nil {
		return cfg, nil
	}
	cfg = config.DefaultConfig()
	if !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := svc.Save(cfg); err != nil {
		return cfg, fmt.Errorf("failed to save default config: %w", err)
	}
	return cfg, nil
}
