// Package rules holds the static PHI detection catalog: named categories,
// each with an ordered list of case-insensitive patterns. The catalog is
// fixed at startup and never fails after init.
package rules
