package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yacobolo/colorscan"
	"github.com/yacobolo/colorscan/internal/summary"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root] [output]",
	Short: "Scan a source tree and write a color report",
	Long: `Walk root (default "src"), collect every color literal and SCSS color
variable reference in .ts, .html and .scss files, and write a report ordered
by hue to output (default "colours.html").`,
	Args: cobra.MaximumNArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	addScanFlags(scanCmd)
}

func addScanFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("format", "", "Report format: html|json|yaml|markdown (default: from output extension)")
	f.StringSlice("ext", nil, "File extensions scanned for colors (default: .ts,.html,.scss)")
	f.StringSlice("variable-ext", nil, "File extensions scanned for variable definitions (default: .scss)")
	f.StringSlice("exclude-suffix", nil, "Path suffixes never scanned (default: .spec.ts)")
	f.StringSlice("exclude", nil, "Glob patterns for paths to skip (supports **)")
	f.Bool("gitignore", false, "Skip files matched by the root's .gitignore")
	f.Bool("custom-properties", false, "Resolve CSS custom properties (--name: #fff) as variables")
	f.Int("concurrency", colorscan.DefaultConcurrency, "Parallel file reads")
	f.Bool("skip-unreadable", false, "Warn about unreadable files instead of failing")
	f.Int("summary", 10, "Most used colors to print after the scan (0 disables)")
	f.Bool("watch", false, "Rescan whenever a scanned file changes")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := applyPositionalArgs(args); err != nil {
		return err
	}

	quiet := getBool("quiet", false)
	setupLogger(getBool("verbose", false), quiet)

	config := buildScanConfig()
	format, err := colorscan.DetermineOutputFormat(config.Format, config.Output)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	run := func() error {
		return scanAndReport(ctx, config, format, quiet)
	}
	if err := run(); err != nil {
		return err
	}

	if !getBool("scan.watch", false) {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching for changes", "root", config.Root)
	return colorscan.Watch(ctx, config, colorscan.DefaultDebounce, func() error {
		// A failed rescan keeps the previous report and the watch alive.
		if err := run(); err != nil {
			slog.Error("rescan failed", "error", err)
		}
		return nil
	})
}

// scanAndReport runs one scan and writes the report. Nothing is written when
// the scan fails.
func scanAndReport(ctx context.Context, config colorscan.Config, format colorscan.OutputFormat, quiet bool) error {
	result, err := colorscan.Scan(ctx, config)
	if err != nil {
		return err
	}

	if err := colorscan.WriteReportFile(config.Output, result, format); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}
	slog.Debug("report written", "path", config.Output, "format", string(format))

	if !quiet {
		reporter := summary.NewReporter(os.Stdout, getBool("color", false))
		reporter.PrintStatistics(result, config.Output)
		reporter.PrintTopColors(result, getInt("scan.summary", 10))
		reporter.PrintWarnings(result)
	}

	return nil
}
