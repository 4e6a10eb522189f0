// Package engine contains the scanning pipeline for philint. It traverses
// target files, runs the line scanner, and returns an ordered scan result.
// This package is internal; external consumers should use the stable facade
// in pkg/core.
package engine
