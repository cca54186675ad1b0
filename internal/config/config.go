// Package config handles configuration loading for the coordinator CLI.
// It supports XDG config paths, project-level overrides, environment
// variables, and live reload on file change.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/nishantdas/agentcoord/internal/state"
)

// Config holds all configuration for the coordinator.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	History   HistoryConfig   `mapstructure:"history"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Agents    AgentsConfig    `mapstructure:"agents"`
	Export    ExportConfig    `mapstructure:"export"`
}

// AnthropicConfig holds Anthropic API settings for the Claude-backed
// content agent.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// HistoryConfig holds task-history persistence settings.
type HistoryConfig struct {
	// Path is the SQLite database location; empty uses the XDG default.
	Path string `mapstructure:"path"`
	// Persist enables writing dispatch records to the database.
	Persist bool `mapstructure:"persist"`
}

// LoggingConfig holds debug logging settings.
type LoggingConfig struct {
	// DebugLogPath is the coordinator debug log file; empty disables it.
	DebugLogPath string `mapstructure:"debug_log_path"`
}

// AgentsConfig holds settings for the built-in agents.
type AgentsConfig struct {
	// SearchLimit caps the research agent's result count.
	SearchLimit int `mapstructure:"search_limit"`
	// FinanceDays is the market-data series length.
	FinanceDays int `mapstructure:"finance_days"`
	// UseClaude routes content tasks through the Anthropic API when an
	// API key is configured.
	UseClaude bool `mapstructure:"use_claude"`
}

// ExportConfig holds export surface settings.
type ExportConfig struct {
	// Format is the default export format, "json" or "yaml".
	Format string `mapstructure:"format"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY)
// 2. Project config (.agentcoord.yaml in current directory or parent)
// 3. User config (~/.config/agentcoord/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath()
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath()
	}
	return cfg, nil
}

// Watch reloads the config file at path whenever it changes and hands
// the fresh Config to onChange. Parse failures keep the previous config
// and are reported through onError.
func Watch(path string, onChange func(*Config), onError func(error)) error {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config from %s: %w", path, err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading config: %w", err))
			}
			return
		}
		cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			Path:    defaultHistoryPath(),
			Persist: true,
		},
		Agents: AgentsConfig{
			SearchLimit: 5,
			FinanceDays: 30,
		},
		Export: ExportConfig{
			Format: "json",
		},
	}
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")

	v.SetDefault("history.path", "")
	v.SetDefault("history.persist", true)

	v.SetDefault("logging.debug_log_path", "")

	v.SetDefault("agents.search_limit", 5)
	v.SetDefault("agents.finance_days", 30)
	v.SetDefault("agents.use_claude", false)

	v.SetDefault("export.format", "json")
}

// getUserConfigDir returns the XDG config directory for the coordinator.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "agentcoord")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "agentcoord")
	}
	return filepath.Join(home, ".config", "agentcoord")
}

// findProjectConfig searches for .agentcoord.yaml in the current
// directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".agentcoord.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// defaultHistoryPath returns the XDG data location of the history
// database.
func defaultHistoryPath() string {
	return state.DefaultDBPath()
}
