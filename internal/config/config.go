// Package config loads the demo's YAML configuration.
//
// Values come from three layers: built-in defaults, an optional YAML file,
// and environment overrides. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/reorder"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ListConfig struct {
	Rows      int     `yaml:"rows"`
	RowHeight float32 `yaml:"row_height"`
	Gap       float32 `yaml:"gap"`
	Padding   float32 `yaml:"padding"`
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Width     float32 `yaml:"width"`
}

type LoggingConfig struct {
	Verbose bool   `yaml:"verbose"`
	File    string `yaml:"file"` // rotated when set
}

type Config struct {
	Window        WindowConfig   `yaml:"window"`
	List          ListConfig     `yaml:"list"`
	Drag          reorder.Tuning `yaml:"drag"`
	DragThreshold float32        `yaml:"drag_threshold"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Env var names used as overrides.
const (
	EnvVerbose = "REORDER_VERBOSE"
	EnvLogFile = "REORDER_LOG_FILE"
)

// Defaults returns the demo defaults.
func Defaults() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Reorder"},
		List: ListConfig{
			Rows:      6,
			RowHeight: 48,
			Gap:       4,
			Padding:   8,
			X:         80,
			Y:         60,
			Width:     360,
		},
		Drag:          reorder.DefaultTuning(),
		DragThreshold: reorder.DefaultDragThreshold,
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. An empty path or a missing file yields the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Verbose = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.List.Rows < 0:
		return fmt.Errorf("%w: list.rows %d", ErrInvalid, c.List.Rows)
	case c.List.RowHeight <= 0:
		return fmt.Errorf("%w: list.row_height %g", ErrInvalid, c.List.RowHeight)
	case c.List.Gap < 0 || c.List.Padding < 0:
		return fmt.Errorf("%w: list.gap and list.padding must not be negative", ErrInvalid)
	case c.List.Width <= 0:
		return fmt.Errorf("%w: list.width %g", ErrInvalid, c.List.Width)
	case c.Drag.CollapsedHeight < 0:
		return fmt.Errorf("%w: drag.collapsed_height %g", ErrInvalid, c.Drag.CollapsedHeight)
	case c.Drag.CollapseDuration < 0 || c.Drag.SettleDuration < 0:
		return fmt.Errorf("%w: drag durations must not be negative", ErrInvalid)
	case c.DragThreshold < 0:
		return fmt.Errorf("%w: drag_threshold %g", ErrInvalid, c.DragThreshold)
	}
	return nil
}

// ListHeight returns the height the list needs to hold all rows.
func (l ListConfig) ListHeight() float32 {
	if l.Rows == 0 {
		return 2 * l.Padding
	}
	n := float32(l.Rows)
	return 2*l.Padding + n*l.RowHeight + (n-1)*l.Gap
}
