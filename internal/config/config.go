// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/scribe/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger settings under [logger] table
	Shell  ShellConfig   `toml:"shell"`  // Shell-specific settings
}

// ShellConfig holds shell-specific settings.
type ShellConfig struct {
	Prompt          string `toml:"prompt"`
	HistoryLimit    int    `toml:"history_limit"` // 0 keeps unlimited history
	SystemClipboard bool   `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Shell: ShellConfig{
			Prompt:          DefaultPrompt,
			HistoryLimit:    DefaultHistoryLimit,
			SystemClipboard: SystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A missing
// file is not an error.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Shell.Prompt == "" {
		c.Shell.Prompt = defaults.Shell.Prompt
	}
	if c.Shell.HistoryLimit < 0 {
		c.Shell.HistoryLimit = defaults.Shell.HistoryLimit
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				mergeFileConfig(cfg, fileCfg)
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// mergeFileConfig overlays settings the file actually set onto cfg.
func mergeFileConfig(cfg, fileCfg *Config) {
	if fileCfg.Logger.LogLevel != "" {
		cfg.Logger.LogLevel = fileCfg.Logger.LogLevel
	}
	if fileCfg.Logger.LogFilePath != "" {
		cfg.Logger.LogFilePath = fileCfg.Logger.LogFilePath
	}
	if len(fileCfg.Logger.EnabledTags) > 0 {
		cfg.Logger.EnabledTags = fileCfg.Logger.EnabledTags
	}
	if len(fileCfg.Logger.DisabledTags) > 0 {
		cfg.Logger.DisabledTags = fileCfg.Logger.DisabledTags
	}

	if fileCfg.Shell.Prompt != "" {
		cfg.Shell.Prompt = fileCfg.Shell.Prompt
	}
	if fileCfg.Shell.HistoryLimit > 0 {
		cfg.Shell.HistoryLimit = fileCfg.Shell.HistoryLimit
	}
	cfg.Shell.SystemClipboard = fileCfg.Shell.SystemClipboard
}
