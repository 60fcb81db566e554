package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/styles"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for providers",
		Long: `Show which providers have an API token available.

Example:
  assetctl auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := defaultStore()

			for _, provider := range auth.Providers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider, tokenStatus(store, provider))
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}

func tokenStatus(store auth.Store, provider string) string {
	if env := auth.EnvVar(provider); env != "" && os.Getenv(env) != "" {
		return styles.SuccessText.Render("logged in") + " (from " + env + ")"
	}

	_, err := store.GetToken(provider)
	switch {
	case err == nil:
		return styles.SuccessText.Render("logged in")
	case errors.Is(err, auth.ErrTokenNotFound):
		return styles.MutedText.Render("not logged in")
	default:
		return styles.ErrorText.Render(fmt.Sprintf("error (%v)", err))
	}
}
