// Package importcmd implements the "import" command group: ingest an
// inventory file or a provider's server list into the asset store.
package importcmd

import (
	"os"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// NewCommand returns the "import" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import server inventory into the asset store",
		Long: `Import server inventory into the asset store.

Rows are normalized into asset records: column names are matched against
known aliases, sizes are converted to MB, and the project label is linked
to an existing project when one has the same name.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(FileCommand())
	cmd.AddCommand(HetznerCommand())

	return cmd
}

// addCommonFlags registers the flags shared by every import source.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Validate and print records without saving them")
	cmd.Flags().BoolP("yes", "y", false, "Save without asking for confirmation")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	cmd.Flags().Int("workers", 0, "Goroutines used to validate rows (default from config)")
	cmd.Flags().String("projects", "", "JSON file of projects to link against instead of the local store")
}

// isInteractive reports whether prompts and spinners can be shown.
func isInteractive(cmd *cobra.Command) bool {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(out.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
