package repair_test

import (
	"strings"
	"testing"

	"mojifix/internal/mojibake"
	"mojifix/internal/repair"
)

func applyRules(rules []repair.Rule, text string) string {
	p, err := repair.NewPipeline(rules, nil, false)
	if err != nil {
		panic(err)
	}
	out, _ := p.ApplyStructural(text)
	return out
}

func TestDefaultRulesOrder(t *testing.T) {
	want := []string{
		repair.RuleTopBorder,
		repair.RuleTeeBorder,
		repair.RuleBottomBorder,
		repair.RuleTriplePrefix,
		repair.RuleTripleSuffix,
		repair.RulePipeQuote,
		repair.RuleQuoteDrop,
	}
	rules := repair.DefaultRules(true)
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, name := range want {
		if rules[i].Name != name {
			t.Fatalf("rule %d: got %q want %q", i, rules[i].Name, name)
		}
	}
}

func TestDefaultRulesBorders(t *testing.T) {
	border := strings.Repeat("=", 48)
	tee := "||" + strings.Repeat("=", 47)

	tests := []struct {
		name    string
		input   string
		want    string
		lenient bool
	}{
		{"top", mojibake.Garble("╔════════╗"), border, false},
		{"tee", mojibake.Garble("╠════╣"), tee, false},
		{"bottom", mojibake.Garble("╚══╝"), border, false},
		{"top and bottom collapse", mojibake.Garble("╔═╗\n╚═╝"), border + "\n" + border, false},
		{"flattened tee", mojibake.Flatten(mojibake.Garble("╠══════╣")), tee, true},
		{"flattened bottom", mojibake.Flatten(mojibake.Garble("╚═══╝")), border, true},
		{"flattened bottom strict", mojibake.Flatten(mojibake.Garble("╚═══╝")), mojibake.Flatten(mojibake.Garble("╚═══╝")), false},
		{"indented", "  " + mojibake.Garble("╔══╗") + "\n", "  " + border + "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyRules(repair.DefaultRules(tt.lenient), tt.input)
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultRulesTriplesAndPipes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"triple heading", mojibake.Garble("═══ Layers ═══"), "=== Layers ==="},
		{"flattened triple heading", "â•â•â• Section â•â•â•", "=== Section ==="},
		{"quoted line", mojibake.Garble("║ Canvas ready ║"), "|| Canvas ready"},
		{"leading pipe only", mojibake.Garble("║ note"), "|| note"},
		{"trailing pipe only", mojibake.Garble("done ║"), "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyRules(repair.DefaultRules(true), tt.input)
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestRuleOrderIsLoadBearing(t *testing.T) {
	input := "text " + mojibake.Garble("║") + " more"

	rules := repair.DefaultRules(true)
	if got := applyRules(rules, input); got != "text || more" {
		t.Fatalf("default order: got %q", got)
	}

	swapped := repair.DefaultRules(true)
	pipe, drop := -1, -1
	for i, r := range swapped {
		switch r.Name {
		case repair.RulePipeQuote:
			pipe = i
		case repair.RuleQuoteDrop:
			drop = i
		}
	}
	swapped[pipe], swapped[drop] = swapped[drop], swapped[pipe]
	if got := applyRules(swapped, input); got != "text more" {
		t.Fatalf("swapped order: got %q", got)
	}
}

func TestNewRule(t *testing.T) {
	rule, err := repair.NewRule(" arrow ", "â†’", "->")
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	if rule.Name != "arrow" {
		t.Fatalf("expected trimmed name, got %q", rule.Name)
	}
	if got := applyRules([]repair.Rule{rule}, "a â†’ b"); got != "a -> b" {
		t.Fatalf("got %q", got)
	}

	literal, err := repair.NewRule("dollar", "x", "$1")
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	if got := applyRules([]repair.Rule{literal}, "x"); got != "$1" {
		t.Fatalf("replacement should be literal, got %q", got)
	}

	for _, bad := range []struct{ name, pattern string }{{"", "x"}, {"empty", ""}, {"broken", "("}} {
		if _, err := repair.NewRule(bad.name, bad.pattern, ""); err == nil {
			t.Fatalf("expected error for %+v", bad)
		}
	}
}
