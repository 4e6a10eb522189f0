package philint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philint/philint/internal/engine"
	"github.com/philint/philint/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	baseline := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the acknowledged-violation baseline",
	}
	rootCmd.AddCommand(baseline)

	var path string
	var file string
	update := &cobra.Command{
		Use:   "update",
		Short: "Rescan and record current violations as the baseline",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(path)
			res, err := engine.Scan(engine.Config{Root: abs, NoCache: true})
			if err != nil {
				return fmt.Errorf("scan error: %w", err)
			}
			if err := report.SaveBaseline(filepath.Join(abs, file), res); err != nil {
				return fmt.Errorf("baseline error: %w", err)
			}
			fmt.Fprintf(os.Stderr, "baseline updated: %d violations recorded\n", res.Total)
			return nil
		},
	}
	update.Flags().StringVarP(&path, "path", "p", ".", "path to scan")
	update.Flags().StringVar(&file, "baseline", report.BaselineFile, "baseline file name under the scanned root")
	baseline.AddCommand(update)
}
