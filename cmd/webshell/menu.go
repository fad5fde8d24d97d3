package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/webshell/internal/menu"
	"github.com/jmylchreest/webshell/internal/model"
	"github.com/jmylchreest/webshell/internal/output"
)

var menuOpts struct {
	platform string
	format   string
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu bar built for a platform",
	Long: `Build the menu bar for a platform and print it without opening a window.

Formats:
  tree  Submenus and items as a tree (default)
  json  Platform, capabilities, close ids and submenus as JSON
  yaml  Same document as YAML
  ids   The ids of the Close Window items (hide/minimize), one per line

Examples:
  webshell menu --platform darwin
  webshell menu --format json | jq '.close_ids'`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().StringVar(&menuOpts.platform, "platform", "",
		"Target platform (darwin, linux, windows; default: current)")
	menuCmd.Flags().StringVarP(&menuOpts.format, "format", "f", string(output.FormatTree),
		"Output format ("+formatNames()+")")
}

func formatNames() string {
	types := output.FormatTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func runMenu(cmd *cobra.Command, args []string) error {
	formatter, err := output.NewFormatter(output.FormatType(menuOpts.format))
	if err != nil {
		return err
	}

	p := menu.Current()
	if menuOpts.platform != "" {
		p = menu.Platform(menuOpts.platform)
	}

	bar, ids := menu.Build(model.AppName, p)
	if err := formatter.Format(os.Stdout, bar, ids); err != nil {
		return fmt.Errorf("failed to format menu: %w", err)
	}
	return nil
}
