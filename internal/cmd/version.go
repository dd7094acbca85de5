package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show bms version information.

Displays:
  - bms version, commit, and build date
  - CUE SDK version used to evaluate manifests`,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
