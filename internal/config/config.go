// Package config provides YAML-based configuration loading for the
// galaxies editor.
package config

// Config contains all runtime configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines default dimensions for freestyle boards.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// UIConfig defines terminal UI parameters.
type UIConfig struct {
	ShowTimer bool `yaml:"show_timer"`
	ShowHelp  bool `yaml:"show_help"`
}

// StorageConfig defines where the solve database lives.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Normalize clamps nonsensical values back to the defaults.
func (c *Config) Normalize() {
	if c.Board.Cols < 1 {
		c.Board.Cols = DefaultConfig().Board.Cols
	}
	if c.Board.Rows < 1 {
		c.Board.Rows = DefaultConfig().Board.Rows
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = DefaultConfig().Storage.DBPath
	}
}
