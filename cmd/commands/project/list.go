package project

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List projects",
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	repo, err := assetstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	projects, err := repo.ListProjects()
	if err != nil {
		return err
	}

	switch output {
	case "json":
		if projects == nil {
			projects = []assetstore.Project{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	case "table", "":
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	fmt.Fprintln(w, "--\t----\t-------")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	w.Flush()
	return nil
}
