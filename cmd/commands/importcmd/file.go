package importcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/auditlog"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/fields"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/services/ingest"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/logging"

	"github.com/spf13/cobra"
)

// FileCommand returns the "import file" command.
func FileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Import servers from a CSV or Excel export",
		Long: `Import servers from a CSV/TSV or Excel (.xlsx) inventory export.

The first row must hold column headers. Rows whose number of fields does
not match the header are skipped and reported; every other row becomes an
asset. Columns that are not recognized are kept in the asset's additional
data.

Examples:
  assetctl import file inventory.csv
  assetctl import file rvtools.xlsx --dry-run -o json
  assetctl import file export.txt --delimiter ";" --yes

` + columnsHelp(),
		Args:         cobra.ExactArgs(1),
		RunE:         runFile,
		SilenceUsage: true,
	}

	addCommonFlags(cmd)
	cmd.Flags().String("delimiter", "", `Field separator for delimited text ("," ";" "|" or "tab"); detected when unset`)

	return cmd
}

// columnsHelp lists the recognized header spellings per canonical field.
func columnsHelp() string {
	var b strings.Builder
	b.WriteString("Recognized columns (first match wins, then case-insensitive):\n")
	for _, key := range fields.Keys() {
		concept, ok := fields.Lookup(key)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %s\n", key, strings.Join(concept.Aliases, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func runFile(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]
	fileName := filepath.Base(path)
	entry := auditlog.ImportEntry{Source: auditlog.SourceFile, FileName: fileName}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts, err := readOptions(cmd, cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	repo, err := assetstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	known, err := loadProjects(cmd, repo)
	if err != nil {
		return err
	}

	svc := newService(logging.FromContext(cmd.Context()), opts)

	var result *ingest.Result
	err = runStep(cmd, opts, "Reading "+fileName+"...", func(ctx context.Context) error {
		var ingestErr error
		result, ingestErr = svc.IngestFile(ctx, data, fileName, known)
		return ingestErr
	})
	if err != nil {
		recordFailure(cmd, entry, start, err)
		return err
	}

	return finish(cmd, opts, repo, result, entry, start)
}
