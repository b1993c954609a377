// Package config provides Viper-based configuration loading for the simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g.
// LASTSTAND_SIMULATION_SEED overrides simulation.seed.
const EnvPrefix = "LASTSTAND"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SimulationConfig selects content and bounds the gauntlet.
type SimulationConfig struct {
	// Seed makes a run replayable. Zero means draw a fresh seed.
	Seed int64 `mapstructure:"seed"`
	// ContentDir is the root of the YAML content tree.
	ContentDir string `mapstructure:"content_dir"`
	// Hero is the creature template that runs the gauntlet.
	Hero string `mapstructure:"hero"`
	// Challenger is the creature template spawned for every bout.
	Challenger string `mapstructure:"challenger"`
	// MaxRounds caps a single fight. Zero means unlimited.
	MaxRounds int `mapstructure:"max_rounds"`
	// MaxEncounters caps the gauntlet. Zero means until the hero dies.
	MaxEncounters int `mapstructure:"max_encounters"`
}

// PresentationConfig controls how the console renderer paces and draws events.
type PresentationConfig struct {
	// PauseUnit is the wall-clock length of one pause unit.
	PauseUnit time.Duration `mapstructure:"pause_unit"`
	// Height is the number of lines kept in the scroll window.
	Height int `mapstructure:"height"`
	// Color enables ANSI redraws and status dimming.
	Color bool `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging      LoggingConfig      `mapstructure:"logging"`
	Simulation   SimulationConfig   `mapstructure:"simulation"`
	Presentation PresentationConfig `mapstructure:"presentation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePresentation(c.Presentation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.ContentDir == "" {
		errs = append(errs, "simulation.content_dir must not be empty")
	}
	if s.Hero == "" {
		errs = append(errs, "simulation.hero must not be empty")
	}
	if s.Challenger == "" {
		errs = append(errs, "simulation.challenger must not be empty")
	}
	if s.MaxRounds < 0 {
		errs = append(errs, fmt.Sprintf("simulation.max_rounds must be >= 0, got %d", s.MaxRounds))
	}
	if s.MaxEncounters < 0 {
		errs = append(errs, fmt.Sprintf("simulation.max_encounters must be >= 0, got %d", s.MaxEncounters))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePresentation(p PresentationConfig) error {
	var errs []string
	if p.PauseUnit < 0 {
		errs = append(errs, "presentation.pause_unit must not be negative")
	}
	if p.Height < 1 {
		errs = append(errs, fmt.Sprintf("presentation.height must be >= 1, got %d", p.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and LASTSTAND_ environment
// overrides applied but no config file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.content_dir", "content")
	v.SetDefault("simulation.hero", "boromir")
	v.SetDefault("simulation.challenger", "orc")
	v.SetDefault("simulation.max_rounds", 10000)
	v.SetDefault("simulation.max_encounters", 0)

	v.SetDefault("presentation.pause_unit", "100ms")
	v.SetDefault("presentation.height", 45)
	v.SetDefault("presentation.color", true)
}
