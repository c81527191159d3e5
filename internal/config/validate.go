package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mojifix/internal/mojibake"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTargets(); err != nil {
		return err
	}
	if _, err := mojibake.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := c.validateRules(); err != nil {
		return err
	}
	if err := c.validateMarkers(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must be set when journal.enabled is true")
	}
	return nil
}

func (c *Config) validateTargets() error {
	if len(c.Targets) == 0 {
		return errors.New("targets must list at least one file")
	}
	for i, target := range c.Targets {
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("targets[%d] must not be empty", i)
		}
	}
	return nil
}

func (c *Config) validateRules() error {
	seen := make(map[string]struct{}, len(c.Repair.Rules))
	for i, rule := range c.Repair.Rules {
		if rule.Name == "" {
			return fmt.Errorf("repair.rules[%d].name must be set", i)
		}
		if _, dup := seen[rule.Name]; dup {
			return fmt.Errorf("repair.rules[%d]: duplicate rule name %q", i, rule.Name)
		}
		seen[rule.Name] = struct{}{}
		if rule.Pattern == "" {
			return fmt.Errorf("repair.rules[%d] (%s): pattern must be set", i, rule.Name)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("repair.rules[%d] (%s): %w", i, rule.Name, err)
		}
	}
	return nil
}

func (c *Config) validateMarkers() error {
	for i, marker := range c.Repair.Markers {
		label := marker.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if marker.Tag == "" {
			return fmt.Errorf("repair.markers[%d] (%s): tag must be set", i, label)
		}
		hasGlyph := marker.Glyph != ""
		hasSequence := marker.Sequence != ""
		if hasGlyph == hasSequence {
			return fmt.Errorf("repair.markers[%d] (%s): set exactly one of glyph or sequence", i, label)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
