// Package config provides YAML-based configuration loading for the engine,
// its storage and the autoplay harness.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
)

// Config contains all configuration for t2048.
type Config struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
}

// SpawnConfig selects how new tiles are drawn.
type SpawnConfig struct {
	Policy string `yaml:"policy"` // "legacy" or "classic"
}

// StorageConfig locates the games database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// AutoplayConfig sizes an autoplay run.
type AutoplayConfig struct {
	Games    int    `yaml:"games"`
	Workers  int    `yaml:"workers"`
	MaxMoves int    `yaml:"max_moves"`
	BaseSeed uint32 `yaml:"base_seed"`
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	if _, err := engine.ParseSpawnPolicy(c.Spawn.Policy); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("config: log level: %w", err))
		}
	}
	if c.Autoplay.Games <= 0 {
		errs = append(errs, fmt.Errorf("config: autoplay games must be positive, got %d", c.Autoplay.Games))
	}
	if c.Autoplay.Workers <= 0 {
		errs = append(errs, fmt.Errorf("config: autoplay workers must be positive, got %d", c.Autoplay.Workers))
	}
	if c.Autoplay.MaxMoves <= 0 {
		errs = append(errs, fmt.Errorf("config: autoplay max_moves must be positive, got %d", c.Autoplay.MaxMoves))
	}

	return errors.Join(errs...)
}

// Spawner builds the engine spawner for the configured policy.
func (c Config) Spawner() engine.Spawner {
	sp := engine.DefaultSpawner()
	if p, err := engine.ParseSpawnPolicy(c.Spawn.Policy); err == nil {
		sp.Policy = p
	}
	return sp
}

// LogLevel returns the configured level, info when unset or invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
