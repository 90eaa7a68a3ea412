package main

import (
	"context"
	"fmt"
	"path/filepath"

	"devcon/cmd/devcon/shellui"
	"devcon/internal/config"
	"devcon/internal/history"
	"devcon/internal/logging"
	"devcon/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runInteractive starts the terminal UI with history and config hot reload.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs always go to a file here.
	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(cfgPath), "devcon.log")
	}
	logger, level, err := logging.New(cfg.Logging.Level, logPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()
	}

	model := shellui.New(cfg, logger, level, store)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := watch.NewConfigWatcher(cfgPath, logger, func(c *config.Config) {
		program.Send(shellui.ConfigReloadedMsg{Cfg: c})
	})
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		// A missing config directory is not fatal; the console still works,
		// only hot reload is lost.
		logger.Warn("config watcher disabled", zap.Error(err))
	} else {
		defer watcher.Stop()
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := program.Run()
		return err
	})
	return g.Wait()
}
