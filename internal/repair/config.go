package repair

import (
	"fmt"

	"mojifix/internal/config"
)

// PipelineFromConfig builds a pipeline from the [repair] section. Empty rule
// or marker lists select the built-in tables.
func PipelineFromConfig(cfg config.Repair) (*Pipeline, error) {
	rules := DefaultRules(cfg.Lenient)
	if len(cfg.Rules) > 0 {
		rules = make([]Rule, 0, len(cfg.Rules))
		for _, rc := range cfg.Rules {
			rule, err := NewRule(rc.Name, rc.Pattern, rc.Replacement)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}

	markers := DefaultMarkers()
	if len(cfg.Markers) > 0 {
		markers = make([]Marker, 0, len(cfg.Markers))
		for i, mc := range cfg.Markers {
			name := mc.Name
			if name == "" {
				name = fmt.Sprintf("marker-%d", i+1)
			}
			if mc.Glyph != "" {
				markers = append(markers, GlyphMarker(name, mc.Glyph, mc.Tag))
				continue
			}
			markers = append(markers, Marker{Name: name, Sequence: mc.Sequence, Tag: mc.Tag})
		}
	}

	return NewPipeline(rules, markers, cfg.Lenient)
}
