package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nursecredx/onboarding-sdk-go/pkg/shared"
	"github.com/spf13/cobra"
)

type app struct {
	settings *shared.Settings
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	state := &app{}

	rootCmd := &cobra.Command{
		Use:               "onboard",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "XRPL nurse onboarding batch tool",
		Long:              "Build, fund and submit the DID, credential and license token batch that onboards a nurse on the XRP Ledger",
		SilenceUsage:      true,
		Version:           fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := shared.LoadSettings()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			level, err := shared.ParseLogLevel(settings.LogLevel)
			if err != nil {
				return err
			}

			state.settings = settings
			state.logger = shared.NewLogger(os.Stderr, level, settings.LogFormat)
			return nil
		},
	}

	rootCmd.AddCommand(newRunCommand(state))
	rootCmd.AddCommand(newBuildCommand(state))
	rootCmd.AddCommand(newFundCommand(state))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}
