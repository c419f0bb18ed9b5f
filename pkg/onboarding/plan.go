package onboarding

import (
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls20"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls33"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
)

const (
	DefaultDIDURI          = "did:xrpl:nurse12345"
	DefaultCredentialType  = "nurse_license"
	DefaultNFTMetadataURI  = "ipfs://cid-of-license-metadata"
	DefaultNFTTransferFee  = uint16(750)
	DefaultShiftCreditMeta = `{"name": "Shift Credit", "symbol": "SHIFT"}`

	// DefaultShiftCreditMax is the intended shift credit supply cap. The
	// xrpl-go codec cannot serialize MaximumAmount yet, so DefaultPlan leaves
	// the cap unset and the issuance is uncapped.
	DefaultShiftCreditMax = "1000000"
)

// Plan describes what goes into an onboarding batch.
type Plan struct {
	DIDURI         string
	CredentialType string

	NFTMetadataURI string
	NFTTransferFee uint16
	NFTFlags       uint32
	NFTTaxon       uint32

	IncludeShiftCredits bool
	ShiftCreditMetadata string
	ShiftCreditMaximum  string
	ShiftCreditFlags    uint32

	Mode    xls56.Mode
	BaseFee int64

	// Validate runs the local validators on every record before the batch
	// is returned.
	Validate bool
}

// DefaultPlan returns the license onboarding plan: a transferable, mutable
// license token with a 0.75% transfer fee, executed all-or-nothing.
func DefaultPlan() Plan {
	return Plan{
		DIDURI:              DefaultDIDURI,
		CredentialType:      DefaultCredentialType,
		NFTMetadataURI:      DefaultNFTMetadataURI,
		NFTTransferFee:      DefaultNFTTransferFee,
		NFTFlags:            xls20.FlagTransferable | xls20.FlagMutable,
		ShiftCreditMetadata: DefaultShiftCreditMeta,
		// TODO: set ShiftCreditMaximum to DefaultShiftCreditMax once the
		// xrpl-go binary codec definitions include MaximumAmount.
		ShiftCreditFlags:    xls33.FlagRequireAuth | xls33.FlagCanEscrow | xls33.FlagCanTransfer,
		Mode:                xls56.ModeAllOrNothing,
		BaseFee:             xls56.DefaultBaseFee,
	}
}
