package main

import (
	"fmt"
	"log/slog"

	"github.com/nursecredx/onboarding-sdk-go/pkg/onboarding"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
	"github.com/spf13/cobra"
)

func newBuildCommand(state *app) *cobra.Command {
	var (
		flags  planFlags
		issuer string
		nurse  string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the unsigned onboarding batch",
		Long:  "Build the unsigned onboarding batch offline and print it as canonical JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := flags.plan()
			if err != nil {
				return err
			}

			batch, err := onboarding.BuildBatch(issuer, nurse, plan)
			if err != nil {
				return err
			}
			canonical, err := batch.CanonicalJSON()
			if err != nil {
				return err
			}

			state.logger.Debug("onboarding batch built",
				slog.String("mode", plan.Mode.String()),
				slog.Int("inner", len(xls56.InnerTransactions(batch))),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(canonical))
			return err
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&issuer, "issuer", "", "issuer classic address [required]")
	cmd.Flags().StringVar(&nurse, "nurse", "", "nurse classic address [required]")
	cmd.MarkFlagRequired("issuer")
	cmd.MarkFlagRequired("nurse")
	return cmd
}
