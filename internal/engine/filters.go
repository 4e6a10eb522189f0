package engine

import "strings"

// Directories the walker never descends into.
var excludedDirs = map[string]bool{
	".git":          true,
	".gradle":       true,
	"build":         true,
	"node_modules":  true,
	".idea":         true,
	"venv":          true,
	".venv":         true,
	"__pycache__":   true,
	".pytest_cache": true,
	"target":        true,
}

// Additional directories skipped when default excludes are enabled.
var defaultExcludeDirs = map[string]bool{
	"vendor":   true,
	"dist":     true,
	"out":      true,
	"coverage": true,
	"bin":      true,
	"obj":      true,
}

// Extensions scanned by default: source, markup, data, and docs.
var defaultExtensions = map[string]bool{
	".kt":   true,
	".java": true,
	".xml":  true,
	".json": true,
	".md":   true,
	".txt":  true,
	".yml":  true,
	".yaml": true,
}

// Self-referential output the linter must never scan: its own report,
// baseline, cache, and ignore files.
var selfFiles = map[string]bool{
	"phi_violations.txt":    true,
	"philint.baseline.json": true,
	".philintcache.json":    true,
	".philintignore":        true,
}

func isDirExcluded(name string, defaults bool) bool {
	if excludedDirs[name] || strings.HasPrefix(name, ".git") {
		return true
	}
	return defaults && defaultExcludeDirs[name]
}

// extensionSet resolves the allowed-extension set from a comma-separated
// override, falling back to the defaults.
func extensionSet(override string) map[string]bool {
	if override == "" {
		return defaultExtensions
	}
	set := map[string]bool{}
	for _, e := range strings.Split(override, ",") {
		e = strings.TrimSpace(strings.ToLower(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}
