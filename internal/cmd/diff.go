package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(gc *GlobalConfig) *cobra.Command {
	var mf ManifestFlags

	c := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare the bundle records of two packages",
		Long: `Parse two HAP packages and show how the bundle record changes.

The records are compared as YAML documents. A lower version code in NEW is
flagged since an install would reject it as a downgrade.

Examples:
  bms diff clock-1.0.hap clock-1.1.hap`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := newParser(gc, &mf)
			if err != nil {
				return err
			}

			from, err := p.ParseHap(args[0])
			if err != nil {
				return reported(c.ErrOrStderr(), err)
			}
			to, err := p.ParseHap(args[1])
			if err != nil {
				return reported(c.ErrOrStderr(), err)
			}

			var diff string
			if from.Record.Digest() != to.Record.Digest() {
				fromYAML, err := output.MarshalYAML(from.Record)
				if err != nil {
					return err
				}
				toYAML, err := output.MarshalYAML(to.Record)
				if err != nil {
					return err
				}
				diff, err = output.DiffYAML(fromYAML, toYAML, output.IsTTY())
				if err != nil {
					return fmt.Errorf("comparing records: %w", err)
				}
			}

			downgrade := from.Record.IsDowngrade(to.Record)
			fmt.Fprint(c.OutOrStdout(),
				output.RenderRecordDiff(args[0], args[1], diff, downgrade, output.GetStyles()))
			return nil
		},
	}

	mf.AddTo(c)

	return c
}
