// Package core provides a small, stable facade over philint's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so build tooling can depend on a stable import path without
// exposing internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Threads: 0}
//	res, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
