package types

import "path/filepath"

// Category names a class of sensitive data (e.g. "phone_numbers",
// "medical_ids"). The set of categories is fixed at startup.
type Category string

// FileIdentity carries the scanned file's path, base name, and extension.
// It is consumed only by the false-positive heuristics and reports.
type FileIdentity struct {
	Path string
	Name string
	Ext  string
}

// NewFileIdentity builds a FileIdentity from a (usually root-relative) path.
func NewFileIdentity(path string) FileIdentity {
	return FileIdentity{
		Path: path,
		Name: filepath.Base(path),
		Ext:  filepath.Ext(path),
	}
}

// Violation is an accepted match: the unit reported to the user and the
// thing CI gates on. Immutable once created.
type Violation struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Category Category `json:"category"`
	Match    string   `json:"match"`
	Message  string   `json:"message"`
}

// ScanResult is the ordered sequence of violations from one run plus the
// total count. Order is file traversal order, then ascending line, then the
// catalog's category/rule iteration order within a line.
type ScanResult struct {
	Violations []Violation `json:"violations"`
	Total      int         `json:"total"`
}
