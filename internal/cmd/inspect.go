package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd(gc *GlobalConfig) *cobra.Command {
	var (
		mf         ManifestFlags
		outputFlag string
	)

	c := &cobra.Command{
		Use:   "inspect DIR",
		Short: "Parse a bundle already extracted on disk",
		Long: `Parse DIR/config.json of an extracted bundle and resolve its resources.

DIR is used as the code path. The label and icon references are looked up in
DIR/assets/<module>/resources.index and the icon files must exist under DIR.

Examples:
  bms inspect /storage/app/run/com.example.clock`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			format, err := parseFormat(outputFlag, false)
			if err != nil {
				return err
			}

			p, err := newParser(gc, &mf)
			if err != nil {
				return err
			}

			res, err := p.ParseInstalled(args[0])
			if err != nil {
				return reported(c.ErrOrStderr(), err)
			}

			output.BundleLogger(res.Record.BundleName).Debug("bundle inspected",
				"digest", res.Record.Digest(),
			)
			return writeDocument(c.OutOrStdout(), res, format)
		},
	}

	mf.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "Output format: yaml, json")

	return c
}

func writeDocument(w io.Writer, v any, format output.OutputFormat) error {
	if err := output.WriteDocument(w, v, format); err != nil {
		return NewExitError(err, ExitGeneralError)
	}
	return nil
}
