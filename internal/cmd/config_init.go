package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/config"
	"github.com/litebms/bms/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default bms configuration.

The file is written to the resolved config path:
  --config flag > BMS_CONFIG env > ~/.bms/config.yaml

Examples:
  # Initialize configuration
  bms config init

  # Overwrite existing configuration
  bms config init --force`,
		RunE: func(c *cobra.Command, _ []string) error {
			path := gc.ConfigPath.Value
			if err := config.WriteConfig(path, config.DefaultConfig(), force); err != nil {
				return NewExitError(err, ExitGeneralError)
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+path))
			fmt.Fprintln(c.OutOrStdout(), "Validate with: bms config vet")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}
