package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Spawn: SpawnConfig{
			Policy: "legacy",
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/games.db",
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
		Autoplay: AutoplayConfig{
			Games:    8,
			Workers:  4,
			MaxMoves: 100000,
			BaseSeed: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
