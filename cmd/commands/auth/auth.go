package auth

import (
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"

	"github.com/spf13/cobra"
)

// defaultStore is swapped for a mock store in tests.
var defaultStore = auth.DefaultStore

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API tokens for inventory sources",
		Long: `Manage API tokens for remote inventory sources.

Use this command group to store tokens securely in the local keychain.
An environment variable (HCLOUD_TOKEN for Hetzner) takes precedence over
a stored token.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
