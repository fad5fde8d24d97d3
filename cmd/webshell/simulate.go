package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/webshell/internal/menu"
	"github.com/jmylchreest/webshell/internal/model"
	"github.com/jmylchreest/webshell/internal/simulate"
)

var simulateOpts struct {
	platform string
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive the event loop from the terminal",
	Long: `Build the menu for a platform and feed events through the shell's event
loop without opening a window. Each event shows the state transition and the
effect it would perform.

Key bindings:
  j/k, ↑/↓    Select menu item
  enter       Activate selected item
  c           Send a close request
  o           Send an unrelated event
  u           Activate an id no menu item has
  ?           Show help
  q           Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := menu.Current()
		if simulateOpts.platform != "" {
			p = menu.Platform(simulateOpts.platform)
		}
		return simulate.Run(model.AppName, p)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simulateOpts.platform, "platform", "",
		"Target platform (darwin, linux, windows; default: current)")
}
