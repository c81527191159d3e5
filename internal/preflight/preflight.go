package preflight

import (
	"path/filepath"

	"mojifix/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the applicable checks for cfg in target order.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := make([]Result, 0, len(cfg.Targets)+1)
	for _, target := range cfg.Targets {
		results = append(results, CheckTargetFile(filepath.Base(target), target))
	}
	if cfg.Journal.Enabled {
		results = append(results, CheckJournalDirectory("Journal", filepath.Dir(cfg.Journal.Path)))
	}
	return results
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
