package update

import (
	"os"
	"path/filepath"
	"strconv"
)

// RuntimeConfig holds the environment-driven knobs resolved at startup.
type RuntimeConfig struct {
	// DBPath is the settings database location.
	DBPath string
	// HistoryPath is the JSONL history log location.
	HistoryPath string
	// HistoryEnabled seeds the history toggle on first run.
	HistoryEnabled bool
}

// FromEnv reads PANELTASKS_DB, PANELTASKS_HISTORY and
// PANELTASKS_HISTORY_ENABLED, falling back to the user config directory.
func FromEnv() RuntimeConfig {
	cfg := RuntimeConfig{}

	if db := os.Getenv("PANELTASKS_DB"); db != "" {
		cfg.DBPath = db
	} else {
		cfg.DBPath = filepath.Join(configDir(), "paneltasks.db")
	}

	if hist := os.Getenv("PANELTASKS_HISTORY"); hist != "" {
		cfg.HistoryPath = hist
	} else {
		cfg.HistoryPath = filepath.Join(configDir(), "history.jsonl")
	}

	if raw := os.Getenv("PANELTASKS_HISTORY_ENABLED"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			cfg.HistoryEnabled = enabled
		}
	}

	return cfg
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "paneltasks")
}
