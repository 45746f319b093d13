// Package address normalizes free-text address fragments before they are
// attached to vendor and venue payloads.
package address

import (
	"regexp"
	"strings"
)

// Noise tokens stripped from address parts, including abbreviated forms.
var denylist = []string{"near", "opposite", "behind", "beside", "bus stop", "opp.", "nr."}

var (
	noiseRules   = compileNoiseRules(denylist)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
	repeatCommas = regexp.MustCompile(`,+`)
)

// compileNoiseRules builds one whole-word, case-insensitive pattern per
// token. Tokens ending in a non-word character (e.g. "opp.") cannot take
// a trailing \b, so the boundary is only anchored on word-character ends.
func compileNoiseRules(tokens []string) []*regexp.Regexp {
	rules := make([]*regexp.Regexp, 0, len(tokens))
	for _, tok := range tokens {
		pattern := "(?i)"
		if isWordChar(tok[0]) {
			pattern += `\b`
		}
		pattern += regexp.QuoteMeta(tok)
		if isWordChar(tok[len(tok)-1]) {
			pattern += `\b`
		}
		rules = append(rules, regexp.MustCompile(pattern))
	}
	return rules
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Clean drops empty parts, strips noise tokens from the rest, collapses
// repeated whitespace and commas, and joins the survivors with ", ".
// Parts that clean down to nothing are dropped too.
func Clean(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		cleaned := strings.TrimSpace(part)
		if cleaned == "" {
			continue
		}
		for _, rule := range noiseRules {
			cleaned = rule.ReplaceAllString(cleaned, "")
		}
		cleaned = multiSpace.ReplaceAllString(cleaned, " ")
		cleaned = repeatCommas.ReplaceAllString(cleaned, ",")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return strings.Join(out, ", ")
}
