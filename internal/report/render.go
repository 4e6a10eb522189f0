package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/philint/philint/internal/rules"
	"github.com/philint/philint/internal/types"
)

// PrintOptions carries presentation knobs for the text renderers.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// WriteText writes the plain-text violation report. The wording is part of
// the tool's contract: CI setups grep for these exact lines.
func WriteText(w io.Writer, res types.ScanResult) {
	if res.Total == 0 {
		fmt.Fprintln(w, "No PHI violations detected.")
		return
	}
	fmt.Fprintln(w, "PHI Violations Detected:")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)
	for _, v := range res.Violations {
		fmt.Fprintf(w, "%s:%d - %s\n", v.Path, v.Line, v.Message)
	}
	fmt.Fprintf(w, "\nTotal violations: %d\n", res.Total)
}

// PrintConsole writes the interactive console view: one line per violation
// plus a footer with counts and timing.
func PrintConsole(w io.Writer, res types.ScanResult, opts PrintOptions) {
	if res.Total == 0 {
		fmt.Fprintln(w, "No PHI violations detected.")
	} else {
		maxCat := 8
		for _, v := range res.Violations {
			if l := len(v.Category); l > maxCat {
				maxCat = l
			}
		}
		for _, v := range res.Violations {
			cat := string(v.Category)
			if !opts.NoColor {
				cat = "\x1b[31m" + cat + "\x1b[0m"
			}
			fmt.Fprintf(w, "%-*s %s:%d  %s\n", maxCat, cat, v.Path, v.Line, v.Match)
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total violations: %d\n", res.Total)
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

// PrintSummary renders a per-category count table in catalog order.
func PrintSummary(w io.Writer, res types.ScanResult) error {
	counts := map[types.Category]int{}
	for _, v := range res.Violations {
		counts[v.Category]++
	}
	table := tablewriter.NewTable(w)
	table.Header("Category", "Violations")
	for _, c := range rules.Categories() {
		if err := table.Append([]string{string(c), fmt.Sprintf("%d", counts[c])}); err != nil {
			return err
		}
	}
	if err := table.Append([]string{"total", fmt.Sprintf("%d", res.Total)}); err != nil {
		return err
	}
	return table.Render()
}
