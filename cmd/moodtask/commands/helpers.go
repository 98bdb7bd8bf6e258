package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/moodtask/internal/config"
	"github.com/marcus/moodtask/internal/gemini"
	"github.com/marcus/moodtask/internal/logging"
	"github.com/marcus/moodtask/internal/store"
	"github.com/marcus/moodtask/internal/suggest"
)

// loadConfig loads configuration, honoring the --config flag, and
// initializes the global logger from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logging.Init(logging.Config{
		Level:         cfg.Logging.Level,
		Path:          cfg.Logging.Path,
		Format:        cfg.Logging.Format,
		RetentionDays: cfg.Logging.RetentionDays,
	}); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	return cfg, nil
}

// openStore opens the task store at the configured path.
func openStore(cfg *config.Config) (*store.Store, error) {
	s, err := store.New(cfg.TasksPath)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	return s, nil
}

// newEngine builds the suggestion engine. Without an API key in the
// environment the engine gets no recommender and always answers from
// the deterministic fallback.
func newEngine(cfg *config.Config) *suggest.Engine {
	var rec suggest.Recommender
	if key := cfg.APIKey(); key != "" {
		rec = gemini.NewClient(key,
			gemini.WithModel(cfg.Gemini.Model),
			gemini.WithTimeout(cfg.Gemini.Timeout),
		)
	} else {
		logging.Component("suggest").Debugf("%s not set, suggestions use fallback only", cfg.Gemini.APIKeyEnv)
	}
	return suggest.NewEngine(rec)
}
