package philint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagThreads int
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the philint CLI.
var rootCmd = &cobra.Command{
	Use:           "philint",
	Short:         "Find PHI/PII in your source tree",
	Long:          "philint scans a source tree for lines that likely contain protected health information or other personal data, and fails the build when any is found.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the philint CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
