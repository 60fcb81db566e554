package auth

import (
	"errors"
	"fmt"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout <provider>",
		Short: "Remove the stored API token for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := auth.ValidateProvider(args[0])
			if err != nil {
				return err
			}

			err = defaultStore().DeleteToken(provider)
			switch {
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "No token stored for provider %s\n", provider)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed token for provider %s\n", provider)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
