package filter

import (
	"strings"

	"github.com/philint/philint/internal/types"
)

// predicate reports whether the candidate match is a false positive. The
// chain short-circuits on the first predicate that returns true.
type predicate func(match, line string, file types.FileIdentity) bool

// Ordering matters: the structural self-exclusion checks (pattern literals,
// pattern prose) run for every file type so the linter scanning its own rule
// definitions never flags itself.
var chain = []predicate{
	isComment,
	isTestPlaceholder,
	isConfigTemplate,
	isPatternLiteral,
	isPatternProse,
}

var configExts = map[string]bool{
	".yml":  true,
	".yaml": true,
	".json": true,
	".xml":  true,
}

// Accept returns true when the match is a genuine violation, false when any
// heuristic classifies it as a false positive. Pure function of its inputs.
func Accept(match, line string, file types.FileIdentity) bool {
	for _, p := range chain {
		if p(match, line, file) {
			return false
		}
	}
	return true
}

func isComment(_, line string, _ types.FileIdentity) bool {
	t := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#")
}

func isTestPlaceholder(match, _ string, file types.FileIdentity) bool {
	if !strings.Contains(strings.ToLower(file.Name), "test") {
		return false
	}
	return containsAny(strings.ToLower(match), "test", "example", "sample")
}

func isConfigTemplate(match, _ string, file types.FileIdentity) bool {
	if !configExts[strings.ToLower(file.Ext)] {
		return false
	}
	return containsAny(strings.ToLower(match), "config", "example", "template")
}

// A literal \b, \d or \w on the line means the line defines a pattern
// rather than carrying real data.
func isPatternLiteral(_, line string, _ types.FileIdentity) bool {
	return strings.Contains(line, `\b`) || strings.Contains(line, `\d`) || strings.Contains(line, `\w`)
}

func isPatternProse(_, line string, _ types.FileIdentity) bool {
	return containsAny(strings.ToLower(line), "pattern", "regex", "format")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
