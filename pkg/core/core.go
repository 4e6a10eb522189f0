package core

import (
	"github.com/philint/philint/internal/engine"
	"github.com/philint/philint/internal/rules"
	"github.com/philint/philint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Category = types.Category
type Violation = types.Violation
type ScanResult = types.ScanResult

// Scan is the stable entrypoint for other programs embedding the linter.
func Scan(cfg Config) (ScanResult, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and also reports file counts and timing.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// Categories returns the fixed detection categories in catalog order.
// Exposed for convenience to avoid importing internals directly.
func Categories() []Category { return rules.Categories() }
