package asset

import (
	"fmt"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/projects"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported assets",
		Long: `List the most recently imported assets.

In a terminal this opens an interactive browser: press enter to open an
asset. Passing -o, or piping the output, prints a table or JSON instead.

Examples:
  assetctl asset list
  assetctl asset list --project Finance
  assetctl asset list --limit 200 -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 50, "Number of assets to display")
	cmd.Flags().String("project", "", "Only show assets linked to this project (name or ID)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}
	project, _ := cmd.Flags().GetString("project")
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" && output != "" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := assetstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	projectID, scope := "", ""
	if project = strings.TrimSpace(project); project != "" {
		if projectID, err = resolveProject(repo, project); err != nil {
			return err
		}
		scope = "project " + project
	}

	load := func() ([]assetstore.Asset, int, error) {
		var assets []assetstore.Asset
		var err error
		if projectID != "" {
			assets, err = repo.ListByProject(projectID, limit)
		} else {
			assets, err = repo.List(limit)
		}
		if err != nil {
			return nil, 0, err
		}
		total, err := repo.Count()
		if err != nil {
			return nil, 0, err
		}
		return assets, total, nil
	}

	if interactive(cmd) {
		if err := runListApp(load, scope); err != nil {
			return fmt.Errorf("asset list failed: %w", err)
		}
		return nil
	}

	assets, total, err := load()
	if err != nil {
		return err
	}

	if output == "json" {
		return printAssetsJSON(cmd, assets)
	}
	if len(assets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No assets found.")
		return nil
	}
	printAssetTable(cmd, assets)
	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d stored asset(s).\n", len(assets), total)
	return nil
}

// resolveProject accepts a project name or ID and returns the ID.
func resolveProject(repo assetstore.Repository, nameOrID string) (string, error) {
	refs, err := repo.ProjectRefs()
	if err != nil {
		return "", err
	}
	for _, ref := range refs {
		if ref.ID == nameOrID {
			return ref.ID, nil
		}
	}
	if ref, ok := projects.Match(nameOrID, refs); ok {
		return ref.ID, nil
	}
	return "", fmt.Errorf("project %q not found", nameOrID)
}
