package core_test

import (
	"fmt"
	"os"

	"github.com/philint/philint/pkg/core"
)

// ExampleScan demonstrates how to perform a simple scan of a directory.
func ExampleScan() {
	// 1. Configure the scan
	cfg := core.Config{
		Root:     ".",         // Scan the current directory
		Threads:  4,           // Number of concurrent workers
		MaxBytes: 1024 * 1024, // Skip files larger than 1MB
		NoCache:  true,        // Always rescan from scratch
	}

	// 2. Run the scan
	res, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		return
	}

	// 3. Process violations
	if res.Total == 0 {
		fmt.Println("No PHI violations detected.")
	} else {
		fmt.Printf("Found %d violations.\n", res.Total)
		// Helper to write JSON output to stdout
		_ = core.MarshalResult(os.Stdout, res)
	}
}

// ExampleScanWithStats shows how to run a scan and retrieve execution statistics.
func ExampleScanWithStats() {
	cfg := core.Config{
		Root:              "testdata",
		DisableCategories: "common_phi_terms", // Skip the broadest category
	}

	// Run scan and get detailed result object
	result, err := core.ScanWithStats(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scanned %d files in %s\n", result.FilesScanned, result.Duration)
	fmt.Printf("Found %d violations\n", result.Scan.Total)
}
