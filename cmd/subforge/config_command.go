package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subforge/internal/config"
)

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config-init",
		Short: "Print a sample job configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return nil
		},
	}
}
