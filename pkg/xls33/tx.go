package xls33

import (
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type MPTokenIssuanceCreateTxParams struct {
	Account       string
	AssetScale    uint8
	MaximumAmount string
	TransferFee   *uint16
	Metadata      string
	Flags         uint32
	Fee           string
}

// BuildMPTokenIssuanceCreateTx builds an unsigned MPTokenIssuanceCreate
// record. Metadata is hex-encoded; zero and empty optional fields are left
// out.
func BuildMPTokenIssuanceCreateTx(params MPTokenIssuanceCreateTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeMPTokenIssuanceCreate, strings.TrimSpace(params.Account), params.Fee)
	record.SetFlags(params.Flags)

	if params.AssetScale != 0 {
		record[FieldAssetScale] = params.AssetScale
	}
	if maximum := strings.TrimSpace(params.MaximumAmount); maximum != "" {
		record[FieldMaximumAmount] = maximum
	}
	if params.TransferFee != nil {
		record[FieldTransferFee] = *params.TransferFee
	}
	if params.Metadata != "" {
		record[FieldMPTokenMetadata] = txn.EncodeHex(params.Metadata)
	}

	return record
}
