// Package config holds the AdminBuddy configuration: the local model
// runtime, storage locations and limits, and UI language.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all AdminBuddy configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig configures the local model runtime.
type EngineConfig struct {
	// BaseURL of the local inference server (OpenAI-compatible API).
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
	// PollInterval is how often the engine status is sampled while the
	// model loads.
	PollInterval string `yaml:"poll_interval"`
	// RequireAccelerator blocks model generation when no supported GPU is
	// detected. The offline preview generation is never blocked.
	RequireAccelerator bool `yaml:"require_accelerator"`
}

// StorageConfig configures the on-disk stores.
type StorageConfig struct {
	// DataDir holds draft.json, profile.json, history.json and logs.
	DataDir      string `yaml:"data_dir"`
	HistoryLimit int    `yaml:"history_limit"`
	// AutosaveDelay is the quiet period after an edit before the draft is
	// written.
	AutosaveDelay string `yaml:"autosave_delay"`
}

// UIConfig configures the interface.
type UIConfig struct {
	// Language of interface labels and messages: uk, en or da.
	Language string `yaml:"language"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives log output in interactive mode so log lines do not
	// corrupt the TUI. Empty means DataDir/abd.log.
	File string `yaml:"file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			BaseURL:            "http://127.0.0.1:8080",
			Model:              "phi-3.5-mini-instruct-q4",
			Timeout:            "2m",
			PollInterval:       "300ms",
			RequireAccelerator: true,
		},
		Storage: StorageConfig{
			DataDir:       defaultDataDir(),
			HistoryLimit:  50,
			AutosaveDelay: "600ms",
		},
		UI: UIConfig{
			Language: "uk",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".abd"
	}
	return filepath.Join(home, ".abd")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load reads configuration from a YAML file. A missing file is not an
// error; defaults are returned. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ABD_ENGINE_URL"); v != "" {
		c.Engine.BaseURL = v
	}
	if v := os.Getenv("ABD_ENGINE_MODEL"); v != "" {
		c.Engine.Model = v
	}
	if v := os.Getenv("ABD_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("ABD_UI_LANGUAGE"); v != "" {
		c.UI.Language = v
	}
}

// GetTimeout returns the engine call timeout.
func (c *Config) GetTimeout() time.Duration {
	return parseDuration(c.Engine.Timeout, 2*time.Minute)
}

// GetPollInterval returns the engine status polling period.
func (c *Config) GetPollInterval() time.Duration {
	return parseDuration(c.Engine.PollInterval, 300*time.Millisecond)
}

// GetAutosaveDelay returns the draft autosave debounce period.
func (c *Config) GetAutosaveDelay() time.Duration {
	return parseDuration(c.Storage.AutosaveDelay, 600*time.Millisecond)
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// LogFile returns the log file path for interactive mode.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Storage.DataDir, "abd.log")
}

// Validate checks the configuration for values the rest of the system
// cannot work with.
func (c *Config) Validate() error {
	if c.Engine.BaseURL == "" {
		return fmt.Errorf("engine.base_url must not be empty")
	}
	if c.Storage.HistoryLimit < 1 {
		return fmt.Errorf("storage.history_limit must be at least 1")
	}
	return nil
}
