package asset

import (
	"fmt"
	"strconv"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "asset show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show details for an asset",
		Long: `Display a stored asset, including its resource allocation and the
original columns it was imported from. In a terminal the asset opens in a
scrollable full-window view; -o or piped output prints it instead.

Examples:
  assetctl asset show 42
  assetctl asset show 42 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid asset ID %q", args[0])
	}

	repo, err := assetstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	asset, err := repo.Get(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("asset %d not found", id)
	}

	if interactive(cmd) {
		if err := runShowApp(asset); err != nil {
			return fmt.Errorf("asset show failed: %w", err)
		}
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		return printAssetJSON(cmd, asset)
	default:
		printAssetDetail(cmd, asset)
	}
	return nil
}
