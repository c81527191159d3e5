package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mojifix/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// single target lives under the temp dir, the journal is enabled and logging
// is limited to errors. Environment overrides are cleared.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()
	t.Setenv("MOJIFIX_LOG_LEVEL", "")
	t.Setenv("MOJIFIX_JOURNAL", "")

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Targets = []string{filepath.Join(base, "src", "pages", "Designer.jsx")}
	cfgVal.Logging.Level = "error"
	cfgVal.Journal.Enabled = true
	cfgVal.Journal.Path = filepath.Join(base, "state", "journal.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTargets replaces the target list with names relative to the temp dir.
func WithTargets(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Targets = b.cfg.Targets[:0]
		for _, name := range names {
			b.cfg.Targets = append(b.cfg.Targets, filepath.Join(b.baseDir, name))
		}
	}
}

// WithJournal toggles the repair journal.
func WithJournal(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = enabled
	}
}

// WithEncoding sets the target encoding label.
func WithEncoding(label string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoding = label
	}
}

// WithStrictMatching disables tolerance for stripped control characters.
func WithStrictMatching() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Repair.Lenient = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Journal.Path))
}

// WriteConfig serializes cfg to a TOML file under its base dir and returns
// the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "mojifix.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
