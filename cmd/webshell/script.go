package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/webshell/internal/bridge"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the notification bridge injected into the page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), bridge.Script())
		return err
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}
