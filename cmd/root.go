package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "cgx",
		Short:         "Claim mining and daily mission rewards for a set of accounts",
		Long:          "cgx authenticates every account from the credential file, claims and restarts the mining cycle when it has elapsed, claims the next daily check-in reward, then sleeps until the next pass.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	if err := bindFlags(rootCmd.PersistentFlags(), app.v); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountsCmd(app),
		newOnceCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
