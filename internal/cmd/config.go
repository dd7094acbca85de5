package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the bms CLI.`,
	}

	cmd.AddCommand(NewConfigInitCmd(gc))
	cmd.AddCommand(NewConfigVetCmd(gc))

	return cmd
}
