package onboarding

import (
	"fmt"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls20"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls33"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls40"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls70"
)

// InnerRecords builds the unwrapped onboarding records in batch order.
func InnerRecords(issuer string, nurse string, plan Plan) []txn.Record {
	issuer = strings.TrimSpace(issuer)
	nurse = strings.TrimSpace(nurse)

	records := []txn.Record{
		xls40.BuildDIDSetTx(xls40.DIDSetTxParams{
			Account: nurse,
			URI:     plan.DIDURI,
			Fee:     txn.FeeInnerBatch,
		}),
		xls70.BuildCredentialAcceptTx(xls70.CredentialAcceptTxParams{
			Account:        nurse,
			Issuer:         issuer,
			CredentialType: xls70.EncodeCredentialType(plan.CredentialType),
			Fee:            txn.FeeInnerBatch,
		}),
		xls20.BuildNFTokenMintTx(xls20.NFTokenMintTxParams{
			Account:     issuer,
			Issuer:      nurse,
			URIHex:      txn.EncodeHex(plan.NFTMetadataURI),
			TransferFee: xls20.TransferFee(plan.NFTTransferFee),
			Taxon:       plan.NFTTaxon,
			Flags:       plan.NFTFlags,
			Fee:         txn.FeeInnerBatch,
		}),
	}

	if plan.IncludeShiftCredits {
		records = append(records, xls33.BuildMPTokenIssuanceCreateTx(xls33.MPTokenIssuanceCreateTxParams{
			Account:       issuer,
			MaximumAmount: plan.ShiftCreditMaximum,
			Metadata:      plan.ShiftCreditMetadata,
			Flags:         plan.ShiftCreditFlags,
			Fee:           txn.FeeInnerBatch,
		}))
	}

	return records
}

// BuildBatch builds the onboarding batch paid for by issuer. An error is
// only returned when plan.Validate is set and a record fails validation.
func BuildBatch(issuer string, nurse string, plan Plan) (txn.Record, error) {
	inner := InnerRecords(issuer, nurse, plan)

	if plan.Validate {
		for index, record := range inner {
			if err := validateInner(record); err != nil {
				return nil, fmt.Errorf("onboarding record %d (%s) is invalid: %w", index, record.Type(), err)
			}
		}
	}

	baseFee := plan.BaseFee
	if baseFee <= 0 {
		baseFee = xls56.DefaultBaseFee
	}
	batch := xls56.BuildBatchTx(xls56.BatchTxParams{
		Account: strings.TrimSpace(issuer),
		Inner:   inner,
		Mode:    plan.Mode,
		Fee:     xls56.DefaultBatchFee(len(inner), baseFee),
	})

	if plan.Validate {
		if err := xls56.ValidateBatch(batch); err != nil {
			return nil, fmt.Errorf("onboarding batch is invalid: %w", err)
		}
	}
	return batch, nil
}

func validateInner(record txn.Record) error {
	switch record.Type() {
	case xls40.TransactionTypeDIDSet:
		return xls40.ValidateDIDSet(record)
	case xls70.TransactionTypeCredentialAccept:
		return xls70.ValidateCredentialAccept(record)
	case xls20.TransactionTypeNFTokenMint:
		return xls20.ValidateNFTokenMint(record)
	case xls33.TransactionTypeMPTokenIssuanceCreate:
		return xls33.ValidateMPTokenIssuanceCreate(record)
	default:
		return nil
	}
}
