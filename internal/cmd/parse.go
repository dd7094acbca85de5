package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/output"
	"github.com/litebms/bms/internal/parser"
)

// NewParseCmd creates the parse command.
func NewParseCmd(gc *GlobalConfig) *cobra.Command {
	var (
		mf          ManifestFlags
		outputFlag  string
		workersFlag int
	)

	c := &cobra.Command{
		Use:   "parse HAP...",
		Short: "Validate packages and print their bundle records",
		Long: `Validate the config.json manifest of one or more HAP packages.

Each package is checked against the device and assembled into the bundle
record an install would produce. Label and icon references stay unresolved
since the package is not extracted.

With several packages they are parsed concurrently and a summary table is
printed; yaml and json output print every accepted record.

Examples:
  # Parse one package
  bms parse entry.hap

  # Parse a batch with 8 workers
  bms parse --workers 8 dist/*.hap

  # Print the record as JSON
  bms parse entry.hap -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runParse(c.Context(), c.OutOrStdout(), c.ErrOrStderr(), args, gc, &mf, outputFlag, workersFlag)
		},
	}

	mf.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "yaml",
		"Output format: yaml, json, table")
	c.Flags().IntVarP(&workersFlag, "workers", "w", 0,
		"Concurrent packages (default: from config)")

	return c
}

func runParse(ctx context.Context, out, errOut io.Writer, paths []string, gc *GlobalConfig, mf *ManifestFlags, outputFmt string, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := parseFormat(outputFmt, true)
	if err != nil {
		return err
	}

	p, err := newParser(gc, mf)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = gc.Config.WorkerCount()
	}

	var results []parser.BatchResult
	title := fmt.Sprintf("Parsing %d package(s)...", len(paths))
	if err := output.RunWithSpinner(func() error {
		results = p.ParseBatch(ctx, paths, workers)
		return nil
	}, output.WithTitle(title)); err != nil {
		return err
	}

	var (
		accepted []*parser.Result
		rows     []output.PackageSummary
		firstErr error
	)
	for _, r := range results {
		if r.Err != nil {
			if len(paths) > 1 {
				output.Warn("package rejected",
					"path", r.Path,
					"code", oerrors.CodeOf(r.Err),
					"duration", r.Duration,
				)
			}
			if firstErr == nil {
				firstErr = r.Err
			}
			rows = append(rows, output.PackageSummary{
				Path:    r.Path,
				Status:  output.StatusRejected,
				Message: r.Err.Error(),
			})
			continue
		}

		rec := r.Result.Record
		accepted = append(accepted, r.Result)
		rows = append(rows, output.PackageSummary{
			Path:        r.Path,
			BundleName:  rec.BundleName,
			Version:     fmt.Sprintf("%s (%d)", rec.VersionName, rec.VersionCode),
			APIWindow:   fmt.Sprintf("%d-%d", rec.CompatibleAPI, rec.TargetAPI),
			Permissions: len(r.Result.Permissions),
			Status:      output.StatusAccepted,
		})
	}

	if len(paths) > 1 {
		output.Info("batch parsed", "packages", len(results), "workers", workers)
		if format != output.FormatTable {
			for _, row := range rows {
				fmt.Fprintln(errOut, output.FormatPackageLine(row.Path, row.Status))
			}
		}
	}

	// A single rejected package gets the detailed report.
	if len(paths) == 1 && firstErr != nil {
		return reported(errOut, firstErr)
	}

	switch {
	case format == output.FormatTable:
		fmt.Fprintln(out, output.RenderSummaryTable(rows))
		fmt.Fprintln(out, output.FormatSummary(len(accepted), len(results)-len(accepted)))
	case len(paths) == 1:
		if err := output.WriteDocument(out, accepted[0], format); err != nil {
			return err
		}
	default:
		if err := output.WriteDocument(out, accepted, format); err != nil {
			return err
		}
	}

	// Rejections were already reported per package.
	if firstErr != nil {
		return &ExitError{
			Err:     fmt.Errorf("%d of %d packages rejected: %w", len(results)-len(accepted), len(results), firstErr),
			Code:    ExitCodeFromError(firstErr),
			Printed: true,
		}
	}
	return nil
}
