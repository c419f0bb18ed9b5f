package xls33

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ValidateMPTokenIssuanceCreate validates the provided issuance record.
func ValidateMPTokenIssuanceCreate(record txn.Record) error {
	if record.Type() != TransactionTypeMPTokenIssuanceCreate {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeMPTokenIssuanceCreate, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}

	flags := record.Flags()
	if unknown := flags &^ (issuanceFlagMask | universalFlagMask); unknown != 0 {
		return txn.NewValidationError(txn.ErrorCodeInvalidFlags, txn.FieldFlags, "unknown MPTokenIssuanceCreate bits 0x%08x", unknown)
	}

	if raw, ok := record[FieldTransferFee]; ok {
		transferFee, valid := txn.Uint32(raw)
		if !valid || transferFee > MaxTransferFee {
			return txn.NewValidationError(txn.ErrorCodeOutOfRange, FieldTransferFee, "must be between 0 and %d, got %v", MaxTransferFee, raw)
		}
		if transferFee > 0 && flags&FlagCanTransfer == 0 {
			return txn.NewValidationError(txn.ErrorCodeInvalidFlags, FieldTransferFee, "requires the can-transfer flag")
		}
	}

	if raw, ok := record[FieldMaximumAmount].(string); ok {
		maximum, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || maximum == 0 || maximum > MaxMaximumAmount {
			return txn.NewValidationError(txn.ErrorCodeOutOfRange, FieldMaximumAmount, "must be a positive integer no larger than %d", MaxMaximumAmount)
		}
	}

	if metadata, ok := record[FieldMPTokenMetadata].(string); ok {
		if err := txn.ValidateHexBlob(FieldMPTokenMetadata, metadata, MaxMetadataBytes); err != nil {
			return err
		}
	}

	return nil
}
