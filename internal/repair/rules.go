package repair

import (
	"fmt"
	"regexp"
	"strings"

	"mojifix/internal/mojibake"
)

// Rule is one structural substitution. Replacement is inserted literally;
// no $-expansion is performed.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// NewRule compiles pattern into a Rule.
func NewRule(name, pattern, replacement string) (Rule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Rule{}, fmt.Errorf("rule name must be set")
	}
	if pattern == "" {
		return Rule{}, fmt.Errorf("rule %q: pattern must be set", name)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: compile pattern: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Replacement: replacement}, nil
}

// Rule names of the default structural list, in application order.
const (
	RuleTopBorder    = "top-border"
	RuleTeeBorder    = "tee-border"
	RuleBottomBorder = "bottom-border"
	RuleTriplePrefix = "triple-prefix"
	RuleTripleSuffix = "triple-suffix"
	RulePipeQuote    = "pipe-quote"
	RuleQuoteDrop    = "quote-drop"
)

var (
	horizontalRule = strings.Repeat("=", 48)
	teeRule        = "||" + strings.Repeat("=", 47)
)

// DefaultRules returns the structural rules for garbled box-drawing borders.
// Top and bottom borders both collapse to the same 48 character rule.
//
// With lenient set, C1 control characters inside the garbled glyphs are
// optional and a garbled no-break space also matches a plain space.
func DefaultRules(lenient bool) []Rule {
	hbar := glyphToken("═", lenient)
	run := runClass("═") + "+"
	triple := "(?:" + hbar + "){3}"

	defs := []struct {
		name        string
		pattern     string
		replacement string
	}{
		{RuleTopBorder, glyphToken("╔", lenient) + run + glyphToken("╗", lenient), horizontalRule},
		{RuleTeeBorder, glyphToken("╠", lenient) + run + glyphToken("╣", lenient), teeRule},
		{RuleBottomBorder, glyphToken("╚", lenient) + run + glyphToken("╝", lenient), horizontalRule},
		{RuleTriplePrefix, triple + " ", "=== "},
		{RuleTripleSuffix, " " + triple, " ==="},
		{RulePipeQuote, glyphToken("║", lenient) + " ", "|| "},
		{RuleQuoteDrop, " " + glyphToken("║", lenient), ""},
	}

	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		rules = append(rules, Rule{
			Name:        def.name,
			Pattern:     regexp.MustCompile(def.pattern),
			Replacement: def.replacement,
		})
	}
	return rules
}

// glyphToken returns a pattern matching the garbled form of glyph.
func glyphToken(glyph string, lenient bool) string {
	var b strings.Builder
	for _, r := range mojibake.Garble(glyph) {
		switch {
		case mojibake.IsC1(r):
			fmt.Fprintf(&b, `\x{%x}`, r)
			if lenient {
				b.WriteByte('?')
			}
		case r == '\u00a0' && lenient:
			b.WriteString(`[\x{a0} ]`)
		case r == '\u00a0':
			b.WriteString(`\x{a0}`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// runClass returns a character class accepting every rune of the garbled
// glyph as well as the intact glyph itself.
func runClass(glyph string) string {
	var b strings.Builder
	b.WriteByte('[')
	seen := make(map[rune]struct{})
	for _, r := range mojibake.Garble(glyph) + glyph {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if mojibake.IsC1(r) {
			fmt.Fprintf(&b, `\x{%x}`, r)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte(']')
	return b.String()
}
