package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nursecredx/onboarding-sdk-go/pkg/faucet"
	"github.com/nursecredx/onboarding-sdk-go/pkg/ledger"
	"github.com/nursecredx/onboarding-sdk-go/pkg/onboarding"
	"github.com/nursecredx/onboarding-sdk-go/pkg/shared"
	"github.com/spf13/cobra"
)

func newRunCommand(state *app) *cobra.Command {
	var (
		flags planFlags
		fund  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Submit the onboarding batch",
		Long:  "Derive the issuer and nurse wallets from RPC_URL, ISSUER_SEED and NURSE_SEED, then sign and submit the onboarding batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := shared.LoadOnboardingConfig()
			if err != nil {
				return err
			}
			state.logger.Debug("configuration loaded", slog.Any("config", *config))

			plan, err := flags.plan()
			if err != nil {
				return err
			}

			issuer, err := ledger.NewWalletFromSeed(config.IssuerSeed)
			if err != nil {
				return fmt.Errorf("issuer wallet: %w", err)
			}
			nurse, err := ledger.NewWalletFromSeed(config.NurseSeed)
			if err != nil {
				return fmt.Errorf("nurse wallet: %w", err)
			}

			backend, err := ledger.NewRPCBackend(ledger.RPCConfig{URL: config.RPCURL})
			if err != nil {
				return err
			}

			runner := &onboarding.Runner{
				Ledger: ledger.NewClient(ledger.ClientConfig{Backend: backend, Logger: state.logger}),
				Logger: state.logger,
			}
			if fund {
				runner.Faucet, err = faucet.NewClient(faucet.Config{
					Network: config.Network,
					BaseURL: state.settings.FaucetURL,
				})
				if err != nil {
					return err
				}
			}

			result, err := runner.Run(cmd.Context(), onboarding.RunOptions{
				Issuer: issuer,
				Nurse:  nurse,
				Plan:   plan,
				Fund:   fund,
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd, result)
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&fund, "fund", false, "fund both accounts from the faucet and wait until they are validated")
	return cmd
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
