// Package config handles loading and validating moodtask configuration.
// Supports a YAML config file and MOODTASK_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all moodtask configuration.
type Config struct {
	// TasksPath is the JSON file holding the task list.
	TasksPath string `mapstructure:"tasks_path"`

	Gemini  GeminiConfig  `mapstructure:"gemini"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
	Remind  RemindConfig  `mapstructure:"remind"`
}

// GeminiConfig configures the recommendation service client.
type GeminiConfig struct {
	Model     string        `mapstructure:"model"`
	Timeout   time.Duration `mapstructure:"timeout"`
	APIKeyEnv string        `mapstructure:"api_key_env"`
}

// HistoryConfig configures the suggestion history database.
type HistoryConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level         string `mapstructure:"level"`
	Path          string `mapstructure:"path"`
	Format        string `mapstructure:"format"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// RemindConfig configures the reminder daemon.
type RemindConfig struct {
	// Schedule is a cron expression for reminder ticks.
	Schedule string `mapstructure:"schedule"`
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "moodtask", "config.yaml")
}

func dataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "moodtask")
}

// Load reads configuration from the global config file and environment.
// A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	return LoadFromPath(GlobalConfigPath())
}

// LoadFromPath reads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MOODTASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tasks_path", filepath.Join(dataDir(), "tasks.json"))

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", 30*time.Second)
	v.SetDefault("gemini.api_key_env", "GEMINI_API_KEY")

	v.SetDefault("history.db_path", filepath.Join(dataDir(), "moodtask.db"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", filepath.Join(dataDir(), "logs"))
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.retention_days", 7)

	// Default: every weekday morning at 09:00.
	v.SetDefault("remind.schedule", "0 9 * * 1-5")
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.TasksPath == "" {
		return fmt.Errorf("tasks_path must not be empty")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", c.Gemini.Timeout)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

// APIKey returns the Gemini API key from the configured environment
// variable, or "" when unset.
func (c *Config) APIKey() string {
	return os.Getenv(c.Gemini.APIKeyEnv)
}
