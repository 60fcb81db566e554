package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <provider>",
		Short: "Store an API token for a provider",
		Long: `Store an API token for a provider using the local keychain.

Example:
  assetctl auth login hetzner
  assetctl auth login hetzner --token "$TOKEN"`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			provider, err := auth.ValidateProvider(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				token, err = readToken(cmd, provider)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
			}

			if token == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: token cannot be empty")
				return
			}

			if err := defaultStore().SetToken(provider, token); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved token for provider %s\n", provider)
		},
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")

	return cmd
}

// readToken prompts for a token: a masked form in a terminal, otherwise a
// raw password read from stdin.
func readToken(cmd *cobra.Command, provider string) (string, error) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.PromptToken(provider)
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter API token: ")
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}
