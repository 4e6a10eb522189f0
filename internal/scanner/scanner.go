package scanner

import (
	"fmt"

	"github.com/philint/philint/internal/filter"
	"github.com/philint/philint/internal/rules"
	"github.com/philint/philint/internal/types"
)

// Scan applies the full pattern catalog to one line of text and returns the
// violations that survive false-positive filtering, in catalog order. It is
// a pure function of its inputs and safe to call concurrently.
func Scan(file types.FileIdentity, lineNo int, line string) []types.Violation {
	return ScanDisabled(file, lineNo, line, nil)
}

// ScanDisabled is Scan with a set of categories excluded from matching.
func ScanDisabled(file types.FileIdentity, lineNo int, line string, disabled map[types.Category]bool) []types.Violation {
	var out []types.Violation
	catalog := rules.Rules()
	for _, category := range rules.Categories() {
		if disabled[category] {
			continue
		}
		for _, re := range catalog[category] {
			for _, match := range re.FindAllString(line, -1) {
				if !filter.Accept(match, line, file) {
					continue
				}
				out = append(out, types.Violation{
					Path:     file.Path,
					Line:     lineNo,
					Category: category,
					Match:    match,
					Message:  fmt.Sprintf("Potential %s: %s", category, match),
				})
			}
		}
	}
	return out
}
