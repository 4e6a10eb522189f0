package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints a scan result as JSON for humans or pipelines.
func MarshalResult(w io.Writer, res ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// UnmarshalResult decodes scan-result JSON, useful for ingestion tests.
func UnmarshalResult(r io.Reader) (ScanResult, error) {
	var res ScanResult
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return ScanResult{}, err
	}
	return res, nil
}
