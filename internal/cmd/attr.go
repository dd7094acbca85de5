package cmd

import (
	"github.com/spf13/cobra"
)

// NewAttrCmd creates the attr command.
func NewAttrCmd(gc *GlobalConfig) *cobra.Command {
	var (
		mf         ManifestFlags
		outputFlag string
	)

	c := &cobra.Command{
		Use:   "attr HAP",
		Short: "Print the bundle name and version code of a package",
		Long: `Read only app.bundleName and app.version.code from a HAP package.

The rest of the manifest is not validated. This is the check an upgrade runs
before comparing against the installed bundle.

Examples:
  bms attr entry.hap
  bms attr entry.hap -o json`,
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

			attrs, err := p.ReadAttributes(args[0])
			if err != nil {
				return reported(c.ErrOrStderr(), err)
			}
			return writeDocument(c.OutOrStdout(), attrs, format)
		},
	}

	mf.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "Output format: yaml, json")

	return c
}
