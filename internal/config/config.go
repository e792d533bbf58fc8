// Package config provides configuration types and defaults for emelder.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"emelder/internal/domain"
	"emelder/internal/log"
)

// Config holds all configuration options for emelder.
type Config struct {
	ClubFile              string `mapstructure:"club_file"`
	AthletesFile          string `mapstructure:"athletes_file"`
	TournamentBasedir     string `mapstructure:"tournament_basedir"`
	DefaultGenderCategory string `mapstructure:"default_gender_category"`
}

// DefaultConfigDir returns the emelder config directory.
// Returns ~/.config/emelder or empty string if home dir unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "emelder")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	configDir := DefaultConfigDir()
	basedir := ""
	if home, err := os.UserHomeDir(); err == nil {
		basedir = filepath.Join(home, "emelder")
	}
	return Config{
		ClubFile:              filepath.Join(configDir, "club.json"),
		AthletesFile:          filepath.Join(configDir, "athletes.json"),
		TournamentBasedir:     basedir,
		DefaultGenderCategory: domain.Mixed.Code(),
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.ClubFile == "" {
		return fmt.Errorf("club_file must not be empty")
	}
	if c.AthletesFile == "" {
		return fmt.Errorf("athletes_file must not be empty")
	}
	if c.TournamentBasedir == "" {
		return fmt.Errorf("tournament_basedir must not be empty")
	}
	if _, err := domain.ParseGenderCategory(c.DefaultGenderCategory); err != nil {
		return fmt.Errorf("default_gender_category: %w", err)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	d := Defaults()
	return fmt.Sprintf(`# emelder configuration

# Club record (JSON, shared schema with the official program's tooling)
club_file: %s

# Athlete registry (JSON)
athletes_file: %s

# Directory the generated .dm4 tournament files are written to
tournament_basedir: %s

# Division preselected for new registrations: g (mixed), m (male), w (female)
default_gender_category: %s
`, d.ClubFile, d.AthletesFile, d.TournamentBasedir, d.DefaultGenderCategory)
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
