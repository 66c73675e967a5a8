package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Cols: 7,
			Rows: 7,
		},
		UI: UIConfig{
			ShowTimer: true,
			ShowHelp:  true,
		},
		Storage: StorageConfig{
			DBPath: "~/.galaxies/solves.db",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultConfigYAML
}
