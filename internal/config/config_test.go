package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mojifix/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("MOJIFIX_LOG_LEVEL", "")
	t.Setenv("MOJIFIX_JOURNAL", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "mojifix", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	wantTarget := filepath.Join(wd, "src", "pages", "Designer.jsx")
	if len(cfg.Targets) != 1 || cfg.Targets[0] != wantTarget {
		t.Fatalf("unexpected targets: %v", cfg.Targets)
	}
	if cfg.Encoding != "utf-8" {
		t.Fatalf("unexpected encoding: %q", cfg.Encoding)
	}
	if !cfg.Repair.Lenient {
		t.Fatal("expected lenient matching by default")
	}
	if cfg.Journal.Enabled {
		t.Fatal("expected journal disabled by default")
	}
	if want := filepath.Join(tempHome, ".local", "share", "mojifix", "journal.db"); cfg.Journal.Path != want {
		t.Fatalf("unexpected journal path: got %q want %q", cfg.Journal.Path, want)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mojifix.toml")
	t.Setenv("MOJIFIX_LOG_LEVEL", "")
	t.Setenv("MOJIFIX_JOURNAL", "")

	type payload struct {
		Targets  []string `toml:"targets"`
		Encoding string   `toml:"encoding"`
		Repair   struct {
			Lenient bool            `toml:"lenient"`
			Markers []config.Marker `toml:"markers"`
		} `toml:"repair"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Journal struct {
			Enabled bool   `toml:"enabled"`
			Path    string `toml:"path"`
		} `toml:"journal"`
	}
	custom := payload{}
	custom.Targets = []string{
		filepath.Join(tempDir, "a.jsx"),
		filepath.Join(tempDir, "b.jsx"),
		filepath.Join(tempDir, "a.jsx"),
	}
	custom.Encoding = " Windows-1252 "
	custom.Repair.Lenient = false
	custom.Repair.Markers = []config.Marker{{Name: "rocket", Glyph: "🚀", Tag: "[DEPLOY]"}}
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "debug"
	custom.Journal.Enabled = true
	custom.Journal.Path = filepath.Join(tempDir, "history.db")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("expected duplicate targets to collapse, got %v", cfg.Targets)
	}
	if cfg.Encoding != "windows-1252" {
		t.Fatalf("expected normalized encoding, got %q", cfg.Encoding)
	}
	if cfg.Repair.Lenient {
		t.Fatal("expected lenient override from file")
	}
	if len(cfg.Repair.Markers) != 1 || cfg.Repair.Markers[0].Tag != "[DEPLOY]" {
		t.Fatalf("unexpected markers: %+v", cfg.Repair.Markers)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != filepath.Join(tempDir, "history.db") {
		t.Fatalf("unexpected journal: %+v", cfg.Journal)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mojifix.toml")
	if err := os.WriteFile(configPath, []byte("staging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOJIFIX_LOG_LEVEL", "WARN")
	t.Setenv("MOJIFIX_JOURNAL", "on")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("expected env to enable journal")
	}
}

func TestCreateSample(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")
	t.Setenv("MOJIFIX_LOG_LEVEL", "")
	t.Setenv("MOJIFIX_JOURNAL", "")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read sample config: %v", err)
	}
	content := string(data)
	for _, want := range []string{"targets", "[repair]", "[logging]", "[journal]"} {
		if !strings.Contains(content, want) {
			t.Fatalf("sample config missing %q", want)
		}
	}

	if _, _, exists, err := config.Load(target); err != nil || !exists {
		t.Fatalf("sample config should load cleanly: exists=%v err=%v", exists, err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "no targets",
			mutate: func(c *config.Config) { c.Targets = nil },
			want:   "targets",
		},
		{
			name:   "unknown encoding",
			mutate: func(c *config.Config) { c.Encoding = "klingon" },
			want:   "encoding",
		},
		{
			name: "bad rule pattern",
			mutate: func(c *config.Config) {
				c.Repair.Rules = []config.Rule{{Name: "broken", Pattern: "(", Replacement: ""}}
			},
			want: "broken",
		},
		{
			name: "duplicate rule",
			mutate: func(c *config.Config) {
				c.Repair.Rules = []config.Rule{
					{Name: "dup", Pattern: "a"},
					{Name: "dup", Pattern: "b"},
				}
			},
			want: "duplicate",
		},
		{
			name: "marker with glyph and sequence",
			mutate: func(c *config.Config) {
				c.Repair.Markers = []config.Marker{{Name: "x", Glyph: "✓", Sequence: "âœ“", Tag: "[OK]"}}
			},
			want: "exactly one",
		},
		{
			name: "marker without tag",
			mutate: func(c *config.Config) {
				c.Repair.Markers = []config.Marker{{Name: "x", Glyph: "✓"}}
			},
			want: "tag",
		},
		{
			name:   "log format",
			mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
		{
			name:   "log level",
			mutate: func(c *config.Config) { c.Logging.Level = "trace" },
			want:   "logging.level",
		},
		{
			name: "journal without path",
			mutate: func(c *config.Config) {
				c.Journal.Enabled = true
				c.Journal.Path = ""
			},
			want: "journal.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
