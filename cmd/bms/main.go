// Package main is the entry point for the bms CLI.
package main

import (
	"errors"
	"os"

	"github.com/litebms/bms/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			cmd.PrintError(os.Stderr, err)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
