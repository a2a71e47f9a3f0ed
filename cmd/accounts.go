package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts from the credential file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens := app.scheduler.LoadAccounts(cmd.Context())
			if len(tokens) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No accounts found.")
				return err
			}

			for i, token := range tokens {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i+1, token.Label(), token.Redacted())
			}

			return nil
		},
	}
}
