package repair

import "fmt"

// Hit counts how often one rule or marker matched during a run.
type Hit struct {
	Name  string
	Count int
}

// Stats summarizes the matches of both phases.
type Stats struct {
	Structural []Hit
	Symbolic   []Hit
}

// StructuralTotal returns the number of structural replacements.
func (s Stats) StructuralTotal() int { return sumHits(s.Structural) }

// SymbolicTotal returns the number of marker replacements.
func (s Stats) SymbolicTotal() int { return sumHits(s.Symbolic) }

// Total returns the number of replacements across both phases.
func (s Stats) Total() int { return s.StructuralTotal() + s.SymbolicTotal() }

func sumHits(hits []Hit) int {
	total := 0
	for _, h := range hits {
		total += h.Count
	}
	return total
}

// Pipeline applies an ordered rule list followed by a marker table.
// A Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	rules   []Rule
	markers *markerTable
	lenient bool
}

// NewPipeline validates and compiles the two tables. Rules run in the given
// order; markers are matched longest key first regardless of order.
func NewPipeline(rules []Rule, markers []Marker, lenient bool) (*Pipeline, error) {
	for i, rule := range rules {
		if rule.Pattern == nil {
			return nil, fmt.Errorf("rule %d (%q): pattern must be set", i, rule.Name)
		}
	}
	table, err := compileMarkers(markers, lenient)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		rules:   append([]Rule(nil), rules...),
		markers: table,
		lenient: lenient,
	}, nil
}

// DefaultPipeline returns the built-in tables with stripped-control tolerance.
func DefaultPipeline() *Pipeline {
	p, err := NewPipeline(DefaultRules(true), DefaultMarkers(), true)
	if err != nil {
		panic(fmt.Sprintf("default pipeline: %v", err))
	}
	return p
}

// Rules returns a copy of the structural rules in application order.
func (p *Pipeline) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Markers returns a copy of the marker table.
func (p *Pipeline) Markers() []Marker {
	return append([]Marker(nil), p.markers.markers...)
}

// Lenient reports whether flattened marker keys are matched.
func (p *Pipeline) Lenient() bool {
	return p.lenient
}

// Apply runs the structural phase and then the symbolic phase.
func (p *Pipeline) Apply(text string) (string, Stats) {
	var stats Stats
	text, stats.Structural = p.ApplyStructural(text)
	text, stats.Symbolic = p.ApplySymbolic(text)
	return text, stats
}

// ApplyStructural applies each rule globally, feeding its output to the next.
func (p *Pipeline) ApplyStructural(text string) (string, []Hit) {
	hits := make([]Hit, len(p.rules))
	for i, rule := range p.rules {
		hits[i].Name = rule.Name
		matches := rule.Pattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		hits[i].Count = len(matches)
		text = rule.Pattern.ReplaceAllLiteralString(text, rule.Replacement)
	}
	return text, hits
}

// ApplySymbolic replaces every marker key with its tag.
func (p *Pipeline) ApplySymbolic(text string) (string, []Hit) {
	counts := make([]int, len(p.markers.markers))
	text = p.markers.apply(text, counts)
	hits := make([]Hit, len(counts))
	for i, m := range p.markers.markers {
		hits[i] = Hit{Name: m.Name, Count: counts[i]}
	}
	return text, hits
}
