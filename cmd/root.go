package cmd

import (
	"fmt"
	"os"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/asset"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/audit"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/auth"
	cfgcmd "github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/importcmd"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/cmd/commands/project"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
	)

	var cmd = &cobra.Command{
		Use:     "assetctl",
		Short:   "Import server inventory exports into a local asset store",
		Version: version,
		Long: `assetctl turns virtualization inventory exports (RVTools-style CSV or
Excel sheets) and cloud server lists into normalized server assets.

Column names are matched against known aliases, sizes are converted to MB,
missing values fall back to defaults, and each row is linked to a project
by name. Rows that cannot be used are reported instead of failing the
whole import.

Quick start:
  assetctl project add Finance              # Create a project to link to
  assetctl import file inventory.xlsx       # Import a spreadsheet
  assetctl import hetzner                   # Import Hetzner Cloud servers
  assetctl asset list                       # Browse imported assets`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err = logging.New(cfg.Level(), verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(importcmd.NewCommand())
	cmd.AddCommand(asset.NewCommand())
	cmd.AddCommand(project.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
