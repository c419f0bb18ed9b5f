package main

import (
	"log/slog"

	"github.com/nursecredx/onboarding-sdk-go/pkg/faucet"
	"github.com/spf13/cobra"
)

func newFundCommand(state *app) *cobra.Command {
	var showSecret bool

	cmd := &cobra.Command{
		Use:   "fund [address]",
		Short: "Fund an account from the test faucet",
		Long:  "Credit an address with test XRP. Without an address the faucet generates a new account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := faucet.NewClient(faucet.Config{
				Network: state.settings.Network,
				BaseURL: state.settings.FaucetURL,
			})
			if err != nil {
				return err
			}

			destination := ""
			if len(args) == 1 {
				destination = args[0]
			}
			result, err := client.Fund(cmd.Context(), destination)
			if err != nil {
				return err
			}
			state.logger.Info("account funded", slog.String("address", result.Address), slog.Float64("balance_xrp", result.Balance))

			if !showSecret {
				result.Secret = ""
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "print the generated account secret")
	return cmd
}
