package asset

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/util"

	"github.com/spf13/cobra"
)

func printAssetJSON(cmd *cobra.Command, asset *assetstore.Asset) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(asset)
}

func printAssetsJSON(cmd *cobra.Command, assets []assetstore.Asset) error {
	if assets == nil {
		assets = []assetstore.Asset{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(assets)
}

func printAssetTable(cmd *cobra.Command, assets []assetstore.Asset) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tPROJECT\tCPU\tRAM\tDISK\tSOURCE")
	fmt.Fprintln(w, "--\t----\t--------\t-------\t---\t---\t----\t------")

	for _, a := range assets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			a.ID,
			a.Name,
			a.Location,
			a.ProjectName,
			a.Resources.CPU,
			util.FormatMB(a.Resources.RAM),
			util.FormatMB(a.Resources.Disk),
			a.Source,
		)
	}
	w.Flush()
}

// printAssetDetail prints a vertical key-value table of an asset.
func printAssetDetail(cmd *cobra.Command, a *assetstore.Asset) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%d\n", a.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", a.Name)
	fmt.Fprintf(w, "  Category:\t%s\n", a.Category)
	fmt.Fprintf(w, "  Status:\t%s\n", a.Status)
	fmt.Fprintf(w, "  Location:\t%s\n", a.Location)
	fmt.Fprintf(w, "  Assigned to:\t%s\n", a.AssignedTo)

	if a.Project != "" {
		fmt.Fprintf(w, "  Project:\t%s (%s)\n", a.ProjectName, a.Project)
	} else {
		fmt.Fprintf(w, "  Project:\t%s\n", a.ProjectName)
	}

	fmt.Fprintf(w, "  CPU:\t%d core(s)\n", a.Resources.CPU)
	fmt.Fprintf(w, "  RAM:\t%s\n", util.FormatMB(a.Resources.RAM))
	fmt.Fprintf(w, "  Disk:\t%s\n", util.FormatMB(a.Resources.Disk))
	fmt.Fprintf(w, "  Purchased:\t%s\n", a.PurchaseDate.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "  Source:\t%s\n", a.Source)
	w.Flush()

	printSection(cmd, "VM info", a.VMInfo)
	printSection(cmd, "Original columns", a.AdditionalData)
}

func printSection(cmd *cobra.Command, title string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", title)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(w, "  %s:\t%s\n", k, values[k])
	}
	w.Flush()
}
