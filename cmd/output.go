package cmd

import (
	"encoding/json"
	"fmt"

	reportadapter "github.com/bnema/cgx-claimer/internal/adapters/render/report"
	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/spf13/cobra"
)

func writePassOutput(cmd *cobra.Command, app *app, pass domain.PassReport, opts reportadapter.RenderOptions, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pass)
	}

	rendered, err := app.reportRenderer(pass, opts)
	if err != nil {
		return fmt.Errorf("render pass report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
