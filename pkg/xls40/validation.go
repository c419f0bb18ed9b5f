package xls40

import (
	"fmt"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ValidateDIDSet validates the provided DIDSet record.
func ValidateDIDSet(record txn.Record) error {
	if record.Type() != TransactionTypeDIDSet {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeDIDSet, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}

	present := 0
	for _, field := range []string{FieldURI, FieldData, FieldDIDDocument} {
		raw, ok := record[field]
		if !ok {
			continue
		}
		present++
		value, isString := raw.(string)
		if !isString {
			return txn.NewValidationError(txn.ErrorCodeInvalidHex, field, "must be a hex string")
		}
		if value == "" {
			// An empty blob clears the field on the ledger.
			continue
		}
		if err := txn.ValidateHexBlob(field, value, MaxFieldBytes); err != nil {
			return err
		}
	}

	if present == 0 {
		return txn.NewValidationError(
			txn.ErrorCodeMissingField,
			"",
			"DIDSet requires at least one of URI, Data, or DIDDocument",
		)
	}
	return nil
}
