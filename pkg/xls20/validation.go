package xls20

import (
	"fmt"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ValidateNFTokenMint validates the provided NFTokenMint record.
func ValidateNFTokenMint(record txn.Record) error {
	if record.Type() != TransactionTypeNFTokenMint {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeNFTokenMint, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}

	flags := record.Flags()
	if unknown := flags &^ (mintFlagMask | universalFlagMask); unknown != 0 {
		return txn.NewValidationError(txn.ErrorCodeInvalidFlags, txn.FieldFlags, "unknown NFTokenMint bits 0x%08x", unknown)
	}

	if raw, ok := record[FieldTransferFee]; ok {
		transferFee, valid := txn.Uint32(raw)
		if !valid || transferFee > MaxTransferFee {
			return txn.NewValidationError(
				txn.ErrorCodeOutOfRange,
				FieldTransferFee,
				"must be between 0 and %d, got %v",
				MaxTransferFee,
				raw,
			)
		}
		if transferFee > 0 && flags&FlagTransferable == 0 {
			return txn.NewValidationError(txn.ErrorCodeInvalidFlags, FieldTransferFee, "requires the transferable flag")
		}
	}

	if uri, ok := record[FieldURI].(string); ok && uri != "" {
		if err := txn.ValidateHexBlob(FieldURI, uri, MaxURIBytes); err != nil {
			return err
		}
	}

	if issuer, ok := record[FieldIssuer].(string); ok && issuer == record.Account() {
		return txn.NewValidationError(txn.ErrorCodeMissingField, FieldIssuer, "must differ from Account when set")
	}

	return nil
}

// ValidateNFTokenModify validates the provided NFTokenModify record.
func ValidateNFTokenModify(record txn.Record) error {
	if record.Type() != TransactionTypeNFTokenModify {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeNFTokenModify, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}
	tokenID, _ := record[FieldNFTokenID].(string)
	if len(tokenID) != 64 || !txn.IsHex(tokenID) {
		return txn.NewValidationError(txn.ErrorCodeInvalidHex, FieldNFTokenID, "must be a 64-character hex token ID")
	}
	if uri, ok := record[FieldURI].(string); ok {
		if err := txn.ValidateHexBlob(FieldURI, uri, MaxURIBytes); err != nil {
			return err
		}
	}
	return nil
}
