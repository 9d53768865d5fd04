package linview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default window size in logical pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 720
)

// Config holds the launch settings for a session. CLI flags override values
// loaded from a file.
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Preset     string `yaml:"preset"`
	PresetFile string `yaml:"preset_file"`
	ShowHUD    bool   `yaml:"show_hud"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		ShowHUD: true,
	}
}

// LoadConfig reads a YAML config file on top of the defaults. Fields absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	return cfg, nil
}
