package importcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/auditlog"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/services/ingest"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/sources"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/logging"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"

	"github.com/spf13/cobra"
)

// Overridable in tests.
var (
	tokenStore = auth.DefaultStore

	newServerLister = func(token, version string) sources.ServerLister {
		client := sources.NewHetznerClient(token, version)
		return &client.Server
	}
)

// HetznerCommand returns the "import hetzner" command.
func HetznerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hetzner",
		Short: "Import servers from a Hetzner Cloud project",
		Long: `Import every server of a Hetzner Cloud project.

The API token is read from HCLOUD_TOKEN or from the keychain
(see "assetctl auth login hetzner"). The server label "project" is used
as the project name.

Examples:
  assetctl import hetzner --dry-run
  assetctl import hetzner --yes`,
		Args:         cobra.NoArgs,
		RunE:         runHetzner,
		SilenceUsage: true,
	}

	addCommonFlags(cmd)

	return cmd
}

func runHetzner(cmd *cobra.Command, args []string) error {
	start := time.Now()
	entry := auditlog.ImportEntry{Source: auditlog.SourceHetzner, FileName: "hetzner"}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts, err := readOptions(cmd, cfg)
	if err != nil {
		return err
	}

	token, err := auth.ResolveToken(tokenStore(), auth.ProviderHetzner)
	if err != nil {
		return fmt.Errorf("%w (run \"assetctl auth login hetzner\")", err)
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

	logger := logging.FromContext(cmd.Context())
	src := sources.NewHetznerSource(newServerLister(token, cmd.Root().Version), sources.WithLogger(logger))
	svc := newService(logger, opts)

	var result *ingest.Result
	err = runStep(cmd, opts, "Fetching Hetzner servers...", func(ctx context.Context) error {
		rows, listErr := src.Rows(ctx)
		if listErr != nil {
			return listErr
		}
		var ingestErr error
		result, ingestErr = svc.IngestRows(ctx, rows, known)
		return ingestErr
	})
	if err != nil {
		recordFailure(cmd, entry, start, err)
		return err
	}
	result.FileName = entry.FileName

	return finish(cmd, opts, repo, result, entry, start)
}
