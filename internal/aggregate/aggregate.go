package aggregate

import (
	"sync"

	"github.com/philint/philint/internal/types"
)

// Aggregator collects violations from one or more producers into a single
// ordered sequence. Add is safe for concurrent use; callers that need a
// deterministic ordering must serialize production order themselves (the
// engine merges per-file buffers in traversal order before adding).
//
// The aggregator has two states: open (accepting Add) and finalized.
// Finalize is idempotent and returns the same ScanResult on repeated calls;
// Add after Finalize is a no-op.
type Aggregator struct {
	mu         sync.Mutex
	violations []types.Violation
	finalized  bool
	result     types.ScanResult
}

// New returns an open aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Add appends a violation, preserving call order. Ignored once finalized.
func (a *Aggregator) Add(v types.Violation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}
	a.violations = append(a.violations, v)
}

// AddAll appends a batch of violations in order. Ignored once finalized.
func (a *Aggregator) AddAll(vs []types.Violation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}
	a.violations = append(a.violations, vs...)
}

// Len reports the number of violations accumulated so far.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return a.result.Total
	}
	return len(a.violations)
}

// Finalize closes the aggregator and returns the accumulated result.
func (a *Aggregator) Finalize() types.ScanResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.finalized {
		// Exact-capacity copy: the result never aliases the internal slice,
		// and an append by the caller cannot grow into it. Non-nil even when
		// empty so JSON output carries [] rather than null.
		vs := make([]types.Violation, len(a.violations))
		copy(vs, a.violations)
		a.result = types.ScanResult{Violations: vs, Total: len(vs)}
		a.finalized = true
	}
	return a.result
}
