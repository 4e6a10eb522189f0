package report

import (
	"encoding/json"
	"io"

	"github.com/philint/philint/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// WriteSARIF writes violations as SARIF 2.1.0 with the category as ruleId.
// Every violation is reported at warning level; the gate is the exit code,
// not the SARIF severity.
func WriteSARIF(w io.Writer, res types.ScanResult, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "philint", Version: version}},
	}
	for _, v := range res.Violations {
		run.Results = append(run.Results, sarifResult{
			RuleID:  string(v.Category),
			Level:   "warning",
			Message: sarifMessage{Text: v.Message},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: v.Path},
					Region:           sarifRegion{StartLine: v.Line},
				},
			}},
		})
	}
	doc := sarif{Version: "2.1.0", Runs: []sarifRun{run}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
