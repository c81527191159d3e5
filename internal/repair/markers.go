package repair

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"mojifix/internal/mojibake"
)

// Marker maps one corrupted emoji sequence to an ASCII bracket tag.
type Marker struct {
	Name     string
	Glyph    string
	Sequence string
	Tag      string
}

// GlyphMarker builds a Marker whose Sequence is the garbled form of glyph.
func GlyphMarker(name, glyph, tag string) Marker {
	return Marker{Name: name, Glyph: glyph, Sequence: mojibake.Garble(glyph), Tag: tag}
}

// DefaultMarkers returns the marker table for emoji status prefixes. Two
// glyphs map to [OK] and two to [DEBUG]; their garbled sequences differ.
func DefaultMarkers() []Marker {
	return []Marker{
		GlyphMarker("note", "📝", "[NOTE]"),
		GlyphMarker("sync", "🔄", "[SYNC]"),
		GlyphMarker("test-tube", "🧪", "[TEST]"),
		GlyphMarker("antenna", "📡", "[API]"),
		GlyphMarker("inbox", "📥", "[DATA]"),
		GlyphMarker("cross-mark", "❌", "[ERROR]"),
		GlyphMarker("check-mark-button", "✅", "[OK]"),
		GlyphMarker("check-mark", "✓", "[OK]"),
		GlyphMarker("wrench", "🔧", "[CONFIG]"),
		GlyphMarker("next-track", "⏭️", "[SKIP]"),
		GlyphMarker("wastebasket", "🗑️", "[DELETE]"),
		GlyphMarker("magnifier", "🔍", "[SEARCH]"),
		GlyphMarker("warning", "⚠️", "[WARN]"),
		GlyphMarker("red-circle", "🔴", "[DEBUG]"),
		GlyphMarker("pushpin", "📍", "[DEBUG]"),
		GlyphMarker("thumbs-up", "👍", "[SUCCESS]"),
		GlyphMarker("bar-chart", "📊", "[STATS]"),
	}
}

// markerTable matches every marker key in one left-to-right scan. Keys are
// tried longest first, so no key can shadow a longer one that starts with it.
type markerTable struct {
	markers []Marker
	index   map[string]int
	pattern *regexp.Regexp
}

func compileMarkers(markers []Marker, lenient bool) (*markerTable, error) {
	table := &markerTable{
		markers: append([]Marker(nil), markers...),
		index:   make(map[string]int, len(markers)*2),
	}
	for i, m := range table.markers {
		if m.Sequence == "" {
			return nil, fmt.Errorf("marker %q: sequence must be set", m.Name)
		}
		// Later entries win over earlier ones with the same key.
		table.index[m.Sequence] = i
	}

	if lenient {
		aliases := make(map[string]int)
		for i, m := range table.markers {
			flat := mojibake.Flatten(m.Sequence)
			if flat == "" || flat == m.Sequence {
				continue
			}
			aliases[flat] = i
		}
		for key, i := range aliases {
			if _, exact := table.index[key]; exact {
				continue
			}
			table.index[key] = i
		}
	}

	if len(table.index) == 0 {
		return table, nil
	}

	keys := make([]string, 0, len(table.index))
	for key := range table.index {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = regexp.QuoteMeta(key)
	}
	re, err := regexp.Compile(strings.Join(quoted, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile marker table: %w", err)
	}
	table.pattern = re
	return table, nil
}

func (t *markerTable) apply(text string, counts []int) string {
	if t.pattern == nil {
		return text
	}
	return t.pattern.ReplaceAllStringFunc(text, func(match string) string {
		i := t.index[match]
		counts[i]++
		return t.markers[i].Tag
	})
}
