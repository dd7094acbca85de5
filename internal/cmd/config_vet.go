package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/config"
	"github.com/litebms/bms/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the bms configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values satisfy the configuration schema

The config path is resolved using precedence:
  --config flag > BMS_CONFIG env > ~/.bms/config.yaml

Examples:
  bms config vet
  bms config vet --config /path/to/config.yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			path := gc.ConfigPath.Value
			output.Debug("validating config", "path", path, "source", gc.ConfigPath.Source)

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return err
			}
			if !exists {
				return NewExitError(fmt.Errorf("configuration file not found: %s (run 'bms config init')", path), ExitNotFound)
			}

			v, err := config.NewValidator()
			if err != nil {
				return NewExitError(err, ExitInternal)
			}

			if err := v.ValidateFile(path); err != nil {
				var verrs config.ValidationErrors
				if errors.As(err, &verrs) {
					for _, e := range verrs {
						output.Error("invalid config value", "field", e.Field, "error", e.Message)
					}
					return &ExitError{Err: err, Code: ExitValidationError, Printed: true}
				}
				return NewExitError(err, ExitValidationError)
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
			return nil
		},
	}
}
