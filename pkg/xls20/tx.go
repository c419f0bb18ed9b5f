package xls20

import (
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type NFTokenMintTxParams struct {
	Account     string
	Issuer      string
	URIHex      string
	TransferFee *uint16
	Taxon       uint32
	Flags       uint32
	Fee         string
}

type NFTokenModifyTxParams struct {
	Account   string
	Owner     string
	NFTokenID string
	URIHex    string
	Fee       string
}

// BuildNFTokenMintTx builds an unsigned NFTokenMint record. TransferFee and
// Flags are passed through without range or bit checks.
func BuildNFTokenMintTx(params NFTokenMintTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeNFTokenMint, strings.TrimSpace(params.Account), params.Fee)
	record.SetFlags(params.Flags)
	record[FieldNFTokenTaxon] = params.Taxon
	record[FieldURI] = params.URIHex

	if issuer := strings.TrimSpace(params.Issuer); issuer != "" {
		record[FieldIssuer] = issuer
	}
	if params.TransferFee != nil {
		record[FieldTransferFee] = *params.TransferFee
	}

	return record
}

// BuildNFTokenModifyTx builds an unsigned NFTokenModify record. An empty
// URIHex removes the URI from a mutable token.
func BuildNFTokenModifyTx(params NFTokenModifyTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeNFTokenModify, strings.TrimSpace(params.Account), params.Fee)
	record[FieldNFTokenID] = strings.TrimSpace(params.NFTokenID)

	if owner := strings.TrimSpace(params.Owner); owner != "" {
		record[FieldOwner] = owner
	}
	if params.URIHex != "" {
		record[FieldURI] = params.URIHex
	}

	return record
}

// TransferFee returns a pointer for NFTokenMintTxParams.TransferFee.
func TransferFee(fee uint16) *uint16 {
	return &fee
}
