package main

import (
	"github.com/nursecredx/onboarding-sdk-go/pkg/onboarding"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
	"github.com/spf13/cobra"
)

type planFlags struct {
	mode         string
	shiftCredits bool
	validate     bool
	didURI       string
}

func (f *planFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", xls56.ModeAllOrNothing.String(), "batch execution mode: all-or-nothing, only-one, until-failure or independent")
	cmd.Flags().BoolVar(&f.shiftCredits, "mpt", false, "include the shift credit token issuance")
	cmd.Flags().BoolVar(&f.validate, "validate", true, "check every record locally before signing")
	cmd.Flags().StringVar(&f.didURI, "did-uri", onboarding.DefaultDIDURI, "URI recorded on the nurse DID")
}

func (f *planFlags) plan() (onboarding.Plan, error) {
	mode, err := xls56.ParseMode(f.mode)
	if err != nil {
		return onboarding.Plan{}, err
	}

	plan := onboarding.DefaultPlan()
	plan.Mode = mode
	plan.IncludeShiftCredits = f.shiftCredits
	plan.Validate = f.validate
	plan.DIDURI = f.didURI
	return plan, nil
}
