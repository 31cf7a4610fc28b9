// Package config provides configuration types, defaults, and persistence for zlayer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zlayer/internal/log"
	"zlayer/internal/scan"
)

// ScanConfig holds the stylesheet scanning thresholds.
type ScanConfig struct {
	// WarnThreshold flags values above it (and at most SevereThreshold)
	// as warnings. Default 1000.
	WarnThreshold int `mapstructure:"warn_threshold"`
	// SevereThreshold flags values above it as severe. Default 9999.
	SevereThreshold int `mapstructure:"severe_threshold"`
}

// WatchConfig holds diagnose --watch options.
type WatchConfig struct {
	// Debounce coalesces rapid successive file events into one rescan.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all configuration options for zlayer.
type Config struct {
	Scan  ScanConfig  `mapstructure:"scan"`
	Watch WatchConfig `mapstructure:"watch"`
}

// Thresholds converts the scan section into scan.Thresholds.
func (c Config) Thresholds() scan.Thresholds {
	return scan.Thresholds{
		Warn:   c.Scan.WarnThreshold,
		Severe: c.Scan.SevereThreshold,
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	std := scan.DefaultThresholds()
	return Config{
		Scan: ScanConfig{
			WarnThreshold:   std.Warn,
			SevereThreshold: std.Severe,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the thresholds form a usable classification.
func Validate(cfg Config) error {
	if cfg.Scan.WarnThreshold < 0 {
		return fmt.Errorf("scan.warn_threshold must be non-negative, got %d", cfg.Scan.WarnThreshold)
	}
	if cfg.Scan.SevereThreshold < cfg.Scan.WarnThreshold {
		return fmt.Errorf("scan.severe_threshold (%d) must be at least scan.warn_threshold (%d)",
			cfg.Scan.SevereThreshold, cfg.Scan.WarnThreshold)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be non-negative, got %s", cfg.Watch.Debounce)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# zlayer configuration
#
# Stylesheet scanning thresholds. Literal z-index values above
# warn_threshold are reported as warnings; values above severe_threshold
# are reported as severe.
scan:
  warn_threshold: 1000
  severe_threshold: 9999

# diagnose --watch options.
watch:
  debounce: 500ms
`
}

// WriteDefaultConfig writes the default config template to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
