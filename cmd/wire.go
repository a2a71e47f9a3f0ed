package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bnema/cgx-claimer/internal/adapters/api/rest"
	reportadapter "github.com/bnema/cgx-claimer/internal/adapters/render/report"
	"github.com/bnema/cgx-claimer/internal/adapters/sessions"
	"github.com/bnema/cgx-claimer/internal/application"
	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/logging"
	"github.com/bnema/cgx-claimer/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v *viper.Viper

	settings       settings
	logger         *zap.Logger
	sessions       ports.SessionSource
	scheduler      *application.Scheduler
	reportRenderer func(domain.PassReport, reportadapter.RenderOptions) (string, error)
	httpClient     *http.Client
	clock          ports.Clock
}

func (a *app) wire(cmd *cobra.Command) error {
	s, err := loadSettings(a.v)
	if err != nil {
		return err
	}

	logOutput := cmd.ErrOrStderr()
	logger, err := logging.New(logging.Options{
		Level:   s.LogLevel,
		Format:  s.LogFormat,
		Output:  logOutput,
		NoColor: !isTerminal(logOutput),
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	if a.httpClient == nil {
		a.httpClient = &http.Client{}
	}
	if a.clock == nil {
		a.clock = ports.SystemClock{}
	}

	api := rest.RewardsAdapter{
		Client: rest.Client{
			BaseURL:        s.BaseURL,
			HTTPClient:     a.httpClient,
			RequestTimeout: s.RequestTimeout,
		},
	}
	workflow := application.NewWorkflow(api, a.clock, s.Schedule, logger)

	a.settings = s
	a.logger = logger
	a.sessions = sessions.NewSource(s.AuthFile)
	a.scheduler = application.NewScheduler(a.sessions, workflow, a.clock, s.Schedule, logger)
	a.reportRenderer = reportadapter.Render

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
