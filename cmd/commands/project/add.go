package project

import (
	"errors"
	"fmt"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui"

	"github.com/spf13/cobra"
)

func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a project",
		Long: `Create a project that imported rows can be linked to.

If no name is given and running in a terminal, the name is prompted for.

Examples:
  assetctl project add Finance
  assetctl project add`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runAdd,
		SilenceUsage: true,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		if !isTerminal() {
			return fmt.Errorf("project name is required")
		}
		prompted, err := tui.PromptProjectName()
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		name = prompted
	}

	repo, err := assetstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	ref, err := repo.AddProject(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %q (ID: %s)\n", ref.Name, ref.ID)
	return nil
}
