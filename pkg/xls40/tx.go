package xls40

import (
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type DIDSetTxParams struct {
	Account     string
	URI         string
	Data        string
	DIDDocument string
	Fee         string
}

type DIDDeleteTxParams struct {
	Account string
	Fee     string
}

// BuildDIDSetTx builds an unsigned DIDSet record. Each non-empty payload
// field is hex-encoded; empty fields are left out of the record.
func BuildDIDSetTx(params DIDSetTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeDIDSet, strings.TrimSpace(params.Account), params.Fee)

	if params.URI != "" {
		record[FieldURI] = txn.EncodeHex(params.URI)
	}
	if params.Data != "" {
		record[FieldData] = txn.EncodeHex(params.Data)
	}
	if params.DIDDocument != "" {
		record[FieldDIDDocument] = txn.EncodeHex(params.DIDDocument)
	}

	return record
}

// BuildDIDDeleteTx builds an unsigned DIDDelete record.
func BuildDIDDeleteTx(params DIDDeleteTxParams) txn.Record {
	return txn.NewRecord(TransactionTypeDIDDelete, strings.TrimSpace(params.Account), params.Fee)
}
