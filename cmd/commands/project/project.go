// Package project implements the "project" command group. Projects are the
// targets that imported rows are linked to by name.
package project

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "project" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the projects imported assets are linked to",
		Long: `Manage projects.

During an import, a row's project column is compared with the project
names stored here (ignoring case). A matching row is linked to the
project's ID.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ListCommand())

	return cmd
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
