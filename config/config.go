package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the main configuration structure.
//
// FillDensity is the per-step fill strike probability. Zero means
// unset and resolves to full density on load; fills never go silent.
type Config struct {
	Kit             string   `json:"kit,omitempty"`
	BPM             int      `json:"bpm,omitempty"`
	Humanize        bool     `json:"humanize,omitempty"`
	Timing          float64  `json:"timing,omitempty"`
	Velocity        float64  `json:"velocity,omitempty"`
	Swing           float64  `json:"swing,omitempty"`
	FillDensity     float64  `json:"fillDensity,omitempty"`
	FillInstruments []string `json:"fillInstruments,omitempty"`
	ExportDir       string   `json:"exportDir,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Kit:         "gm",
		BPM:         120,
		Timing:      0.5,
		Velocity:    0.5,
		FillDensity: 1.0,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "songdrummachine"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config from an explicit path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.clamp()
	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// clamp pulls hand-edited values back into their valid ranges: swing
// 0-0.25, humanize amounts and fill density 0-1.
func (c *Config) clamp() {
	c.Swing = clampF(c.Swing, 0, 0.25)
	c.Timing = clampF(c.Timing, 0, 1)
	c.Velocity = clampF(c.Velocity, 0, 1)
	if c.FillDensity == 0 {
		c.FillDensity = 1.0 // unset resolves to full density
	} else {
		c.FillDensity = clampF(c.FillDensity, 0, 1)
	}
	if c.BPM < 0 {
		c.BPM = 0
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
