package cmd

import (
	reportadapter "github.com/bnema/cgx-claimer/internal/adapters/render/report"
	"github.com/bnema/cgx-claimer/internal/application"
	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *app) *cobra.Command {
	var showReport bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process every account, sleep, and repeat until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showReport {
				app.scheduler.OnPass = func(pass domain.PassReport) {
					if err := writePassOutput(cmd, app, pass, reportadapter.RenderOptions{ShowWait: true}, false); err != nil {
						app.logger.Warn("pass report unavailable", zap.Error(err))
					}
				}
			}

			err := app.scheduler.Run(cmd.Context())
			if err != nil && application.IsCanceled(err) {
				app.logger.Info("stopped")
				return nil
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&showReport, "report", false, "Print a report after every pass")

	return cmd
}
