package repair_test

import (
	"testing"

	"mojifix/internal/mojibake"
	"mojifix/internal/repair"
)

func TestDefaultMarkersAreDistinct(t *testing.T) {
	markers := repair.DefaultMarkers()
	if len(markers) != 17 {
		t.Fatalf("expected 17 markers, got %d", len(markers))
	}
	seen := make(map[string]string, len(markers))
	for _, m := range markers {
		if m.Sequence != mojibake.Garble(m.Glyph) {
			t.Fatalf("%s: sequence does not match garbled glyph", m.Name)
		}
		if prev, dup := seen[m.Sequence]; dup {
			t.Fatalf("%s and %s share the same key %q", prev, m.Name, m.Sequence)
		}
		seen[m.Sequence] = m.Name
	}
}

func TestEachMarkerKeyMapsToItsTag(t *testing.T) {
	for _, lenient := range []bool{false, true} {
		p, err := repair.NewPipeline(nil, repair.DefaultMarkers(), lenient)
		if err != nil {
			t.Fatalf("NewPipeline: %v", err)
		}
		for _, m := range repair.DefaultMarkers() {
			got, hits := p.ApplySymbolic(m.Sequence)
			if got != m.Tag {
				t.Fatalf("lenient=%v %s: got %q want %q", lenient, m.Name, got, m.Tag)
			}
			total := 0
			for _, h := range hits {
				total += h.Count
				if h.Name == m.Name && h.Count != 1 {
					t.Fatalf("lenient=%v %s: expected one hit, got %d", lenient, m.Name, h.Count)
				}
			}
			if total != 1 {
				t.Fatalf("lenient=%v %s: expected one hit overall, got %d", lenient, m.Name, total)
			}

			wrapped := "before " + m.Sequence + " after"
			if got, _ := p.ApplySymbolic(wrapped); got != "before "+m.Tag+" after" {
				t.Fatalf("lenient=%v %s: surrounding text altered: %q", lenient, m.Name, got)
			}
		}
	}
}

func TestManyToOneMarkers(t *testing.T) {
	p := repair.DefaultPipeline()
	groups := map[string][]string{
		"[OK]":    {"✅", "✓"},
		"[DEBUG]": {"🔴", "📍"},
	}
	for tag, glyphs := range groups {
		if mojibake.Garble(glyphs[0]) == mojibake.Garble(glyphs[1]) {
			t.Fatalf("%s keys must differ", tag)
		}
		for _, glyph := range glyphs {
			got, _ := p.ApplySymbolic(mojibake.Garble(glyph))
			if got != tag {
				t.Fatalf("%q: got %q want %q", glyph, got, tag)
			}
		}
	}
}

func TestLenientMarkersMatchFlattenedKeys(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"âŒ failed", "[ERROR] failed"},
		{mojibake.Flatten(mojibake.Garble("🔍")) + " lookup", "[SEARCH] lookup"},
		{mojibake.Flatten(mojibake.Garble("⚠️")) + " careful", "[WARN] careful"},
		{mojibake.Flatten(mojibake.Garble("👍")), "[SUCCESS]"},
		{mojibake.Flatten(mojibake.Garble("🔄")), "[SYNC]"},
		// note and pushpin flatten to the same text; the later entry wins.
		{mojibake.Flatten(mojibake.Garble("📝")), "[DEBUG]"},
	}

	p := repair.DefaultPipeline()
	for _, tt := range tests {
		if got, _ := p.ApplySymbolic(tt.input); got != tt.want {
			t.Fatalf("%q: got %q want %q", tt.input, got, tt.want)
		}
	}

	strict, err := repair.NewPipeline(nil, repair.DefaultMarkers(), false)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	if got, _ := strict.ApplySymbolic("âŒ failed"); got != "âŒ failed" {
		t.Fatalf("strict mode should ignore flattened keys, got %q", got)
	}
}

func TestLongerKeyWins(t *testing.T) {
	markers := []repair.Marker{
		{Name: "short", Sequence: "ab", Tag: "[S]"},
		{Name: "long", Sequence: "abc", Tag: "[L]"},
	}
	p, err := repair.NewPipeline(nil, markers, false)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	got, hits := p.ApplySymbolic("abc ab")
	if got != "[L] [S]" {
		t.Fatalf("got %q", got)
	}
	if hits[0].Count != 1 || hits[1].Count != 1 {
		t.Fatalf("unexpected hits: %+v", hits)
	}
}

func TestMarkerWithoutSequenceRejected(t *testing.T) {
	_, err := repair.NewPipeline(nil, []repair.Marker{{Name: "empty", Tag: "[X]"}}, true)
	if err == nil {
		t.Fatal("expected error for marker without sequence")
	}
}
