package philint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philint/philint/internal/config"
	"github.com/philint/philint/internal/engine"
	"github.com/philint/philint/internal/report"
	"github.com/philint/philint/internal/rules"
	"github.com/spf13/cobra"
)

var (
	flagPath            string
	flagStaged          bool
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagDisable         string
	flagExtensions      string
	flagOutput          string
	flagHTMLOut         string
	flagSummary         bool
	flagNoCache         bool
	flagNoReport        bool
	flagDefaultExcludes bool
	flagBaseline        string
	flagUpdateBaseline  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a source tree for PHI violations",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().BoolVar(&flagStaged, "staged", false, "scan staged changes (pre-commit gate)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these categories (comma-separated)")
	cmd.Flags().StringVar(&flagExtensions, "extensions", "", "override the scanned extension set (comma-separated)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "phi_violations.txt", "violation report file")
	cmd.Flags().StringVar(&flagHTMLOut, "html", "", "also write an HTML report to this path")
	cmd.Flags().BoolVar(&flagSummary, "summary", false, "print a per-category summary table")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental scan cache")
	cmd.Flags().BoolVar(&flagNoReport, "no-report", false, "do not write the report file")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "also skip common build/dependency output (vendor, dist, etc.)")
	cmd.Flags().StringVar(&flagBaseline, "baseline", report.BaselineFile, "baseline file of acknowledged violations")
	cmd.Flags().BoolVar(&flagUpdateBaseline, "update-baseline", false, "record current violations as the baseline and exit 0")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	output := pickString(flagOutput, lcfg.Output, gcfg.Output)
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	// The flag defaults to true, so the file value applies only when the
	// flag was not set on the command line.
	defaultExcludes := flagDefaultExcludes
	if !cmd.Flags().Changed("default-excludes") {
		if lcfg.DefaultExcludes != nil {
			defaultExcludes = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			defaultExcludes = *gcfg.DefaultExcludes
		}
	}
	cfg := engine.Config{
		Root:              abs,
		IncludeGlobs:      pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:      pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:          pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:           pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DisableCategories: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		Extensions:        pickString(flagExtensions, lcfg.Extensions, gcfg.Extensions),
		Staged:            flagStaged,
		NoCache:           pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		DefaultExcludes:   defaultExcludes,
		OutputFile:        output,
	}

	machine := flagJSON || flagSARIF
	if !machine {
		fmt.Fprintf(os.Stderr, "Scanning %s across %d categories...\n", abs, len(rules.Categories()))
	}

	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 0 && !machine {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if total > 0 && !machine {
		fmt.Fprintln(os.Stderr)
	}

	if flagUpdateBaseline {
		if err := report.SaveBaseline(filepath.Join(abs, flagBaseline), res.Scan); err != nil {
			return fmt.Errorf("baseline error: %w", err)
		}
		if !machine {
			fmt.Fprintf(os.Stderr, "baseline updated: %d violations recorded\n", res.Scan.Total)
		}
		return nil
	}

	final := res.Scan
	if base, err := report.LoadBaseline(filepath.Join(abs, flagBaseline)); err == nil {
		final = report.FilterNew(final, base)
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, final, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(final); err != nil {
			return err
		}
	default:
		report.PrintConsole(os.Stdout, final, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
		if flagSummary {
			if err := report.PrintSummary(os.Stdout, final); err != nil {
				return err
			}
		}
	}

	if !flagNoReport {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("report error: %w", err)
		}
		report.WriteText(f, final)
		if err := f.Close(); err != nil {
			return err
		}
	}
	if flagHTMLOut != "" {
		f, err := os.Create(flagHTMLOut)
		if err != nil {
			return fmt.Errorf("html report error: %w", err)
		}
		if err := report.WriteHTML(f, final); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	// The sole gating signal for CI: non-zero exit iff violations exist.
	if final.Total > 0 {
		if !machine {
			fmt.Fprintf(os.Stderr, "Found %d PHI violations. Review and fix before committing.\n", final.Total)
		}
		os.Exit(1)
	}
	return nil
}
