package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reorder.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Defaults()
	if cfg.Drag != want.Drag || cfg.List != want.List || cfg.Window != want.Window {
		t.Fatalf("Load() = %#v, want defaults %#v", cfg, want)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
list:
  rows: 3
  row_height: 30
drag:
  collapsed_height: 4
  settle_duration: 0.05
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.List.Rows != 3 || cfg.List.RowHeight != 30 {
		t.Errorf("list = %#v, want rows 3 and row_height 30", cfg.List)
	}
	if cfg.List.Width != Defaults().List.Width {
		t.Errorf("list.width = %g, want default %g", cfg.List.Width, Defaults().List.Width)
	}
	if cfg.Drag.CollapsedHeight != 4 || cfg.Drag.SettleDuration != 0.05 {
		t.Errorf("drag = %#v, want collapsed_height 4 and settle_duration 0.05", cfg.Drag)
	}
	if cfg.Drag.CollapseDuration != Defaults().Drag.CollapseDuration {
		t.Errorf("collapse_duration = %g, want default", cfg.Drag.CollapseDuration)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "list: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "list:\n  row_height: -1\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv(EnvVerbose, "yes")
	t.Setenv(EnvLogFile, "/tmp/reorder.log")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Logging.Verbose {
		t.Error("Logging.Verbose expected true from env override")
	}
	if got, want := cfg.Logging.File, "/tmp/reorder.log"; got != want {
		t.Errorf("Logging.File = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero rows", func(c *Config) { c.List.Rows = 0 }, true},
		{"zero window", func(c *Config) { c.Window.Width = 0 }, false},
		{"negative gap", func(c *Config) { c.List.Gap = -1 }, false},
		{"negative collapsed height", func(c *Config) { c.Drag.CollapsedHeight = -2 }, false},
		{"negative duration", func(c *Config) { c.Drag.SettleDuration = -0.1 }, false},
		{"negative threshold", func(c *Config) { c.DragThreshold = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestListHeight(t *testing.T) {
	l := ListConfig{Rows: 3, RowHeight: 30, Gap: 2, Padding: 5}
	if got, want := l.ListHeight(), float32(10+90+4); got != want {
		t.Errorf("ListHeight() = %g, want %g", got, want)
	}
}
