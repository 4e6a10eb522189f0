package report

import (
	"encoding/json"
	"os"

	"github.com/philint/philint/internal/types"
)

// Baseline stores acknowledged violations so a repo can adopt the linter
// without fixing historical findings first. Keys are path|category|match.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// BaselineFile is the default baseline path under the repo root.
const BaselineFile = "philint.baseline.json"

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, res types.ScanResult) error {
	b := Baseline{Items: map[string]bool{}}
	for _, v := range res.Violations {
		b.Items[key(v)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

// FilterNew returns the violations not present in the baseline, preserving
// order, and the new total.
func FilterNew(res types.ScanResult, base Baseline) types.ScanResult {
	out := []types.Violation{}
	for _, v := range res.Violations {
		if !base.Items[key(v)] {
			out = append(out, v)
		}
	}
	return types.ScanResult{Violations: out, Total: len(out)}
}

func key(v types.Violation) string {
	return v.Path + "|" + string(v.Category) + "|" + v.Match
}
