package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config is an optional TOML run configuration. Command-line flags win over
// config values; config values win over defaults.
type Config struct {
	InputFile  string `toml:"input"`
	OutputFile string `toml:"output"`
	Verbose    bool   `toml:"verbose"`
	NoColor    bool   `toml:"no_color"`
}

// Load reads and parses a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
