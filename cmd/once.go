package cmd

import (
	"fmt"

	reportadapter "github.com/bnema/cgx-claimer/internal/adapters/render/report"
	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/spf13/cobra"
)

func newOnceCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Process every account a single time and print the pass report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens := app.scheduler.LoadAccounts(cmd.Context())
			if len(tokens) == 0 {
				app.logger.Warn(domain.ErrNoAccounts.Error())
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No accounts found.")
				return err
			}

			pass, err := app.scheduler.RunPass(cmd.Context(), tokens)
			if err != nil {
				return err
			}

			return writePassOutput(cmd, app, pass, reportadapter.RenderOptions{ShowWait: true}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
