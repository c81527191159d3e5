package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTargets(); err != nil {
		return err
	}
	c.Encoding = strings.ToLower(strings.TrimSpace(c.Encoding))
	if c.Encoding == "" {
		c.Encoding = defaultEncoding
	}
	c.normalizeRepair()
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTargets() error {
	targets := make([]string, 0, len(c.Targets))
	seen := make(map[string]struct{}, len(c.Targets))
	for i, target := range c.Targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		expanded, err := expandPath(target)
		if err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
		if _, dup := seen[expanded]; dup {
			continue
		}
		seen[expanded] = struct{}{}
		targets = append(targets, expanded)
	}
	c.Targets = targets
	return nil
}

func (c *Config) normalizeRepair() {
	for i := range c.Repair.Rules {
		c.Repair.Rules[i].Name = strings.TrimSpace(c.Repair.Rules[i].Name)
	}
	for i := range c.Repair.Markers {
		m := &c.Repair.Markers[i]
		m.Name = strings.TrimSpace(m.Name)
		m.Glyph = strings.TrimSpace(m.Glyph)
		m.Tag = strings.TrimSpace(m.Tag)
	}
}

func (c *Config) normalizeJournal() error {
	if value, ok := os.LookupEnv("MOJIFIX_JOURNAL"); ok {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes", "on":
			c.Journal.Enabled = true
		case "0", "false", "no", "off":
			c.Journal.Enabled = false
		}
	}
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = defaultJournalPath
	}
	var err error
	if c.Journal.Path, err = expandPath(strings.TrimSpace(c.Journal.Path)); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("MOJIFIX_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
