// Package asset implements the "asset" command group for browsing stored
// server records.
package asset

import (
	"os"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Replaced in tests.
var (
	isTerminal = func(cmd *cobra.Command) bool {
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
	runListApp = tui.RunAssetList
	runShowApp = tui.RunAssetShow
)

// interactive reports whether cmd should open a full-window view: stdout is
// a terminal and no output format was asked for.
func interactive(cmd *cobra.Command) bool {
	return !cmd.Flags().Changed("output") && isTerminal(cmd)
}

// NewCommand returns the "asset" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "asset",
		Short:        "Browse imported server assets",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}
