package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"paneltasks/internal/history"
	"paneltasks/internal/manager"
	"paneltasks/internal/settings"
	"paneltasks/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "paneltasks:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.FromEnv()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	store, err := settings.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if store.String(settings.KeyHistoryFile) == "" {
		if err := store.SetString(settings.KeyHistoryFile, cfg.HistoryPath); err != nil {
			return fmt.Errorf("seed history path: %w", err)
		}
	}
	if cfg.HistoryEnabled && !store.Bool(settings.KeyHistoryEnabled) {
		if err := store.SetBool(settings.KeyHistoryEnabled, true); err != nil {
			return fmt.Errorf("seed history toggle: %w", err)
		}
	}

	logger := history.NewFileLogger(store.String(settings.KeyHistoryFile), store)
	mgr := manager.New(store, logger)

	program := tea.NewProgram(update.NewModel(mgr, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if err := store.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "paneltasks: settings read issue:", err)
	}
	return nil
}
