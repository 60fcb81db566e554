package config

import (
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage assetctl configuration",
		Long: "View and modify persistent assetctl settings.\n\n" +
			"Configuration is stored at ~/.config/assetctl/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
