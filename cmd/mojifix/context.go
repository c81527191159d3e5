package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mojifix/internal/config"
	"mojifix/internal/journal"
	"mojifix/internal/logging"
	"mojifix/internal/mojibake"
	"mojifix/internal/repair"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.verbose())
	})
	return c.logger, c.loggerErr
}

// withRepairer builds a repairer from the loaded configuration. When the
// journal is enabled the store stays open for the duration of fn.
func (c *commandContext) withRepairer(fn func(*repair.Repairer, *config.Config) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	pipeline, err := repair.PipelineFromConfig(cfg.Repair)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}
	enc, err := mojibake.LookupEncoding(cfg.Encoding)
	if err != nil {
		return err
	}

	opts := []repair.Option{repair.WithEncoding(enc), repair.WithLogger(logger)}
	if cfg.Journal.Enabled {
		store, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()
		opts = append(opts, repair.WithRecorder(store))
	}

	return fn(repair.NewRepairer(pipeline, opts...), cfg)
}

// withJournal opens the existing journal for fn. When no journal file exists
// yet, missing is called instead and nothing is created on disk.
func (c *commandContext) withJournal(fn func(*journal.Store) error, missing func(*config.Config) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Journal.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return missing(cfg)
		}
		return fmt.Errorf("stat journal: %w", err)
	}
	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func resolveTargets(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Targets
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
