package xls56

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ValidateBatch checks a Batch record against the ledger's XLS-56 rules.
func ValidateBatch(batch txn.Record) error {
	if batch.Type() != TransactionTypeBatch {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeBatch, batch.Type())
	}
	if batch.Account() == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}

	if _, ok := batch.ParsedFlags(); !ok {
		return txn.NewValidationError(txn.ErrorCodeInvalidFlags, txn.FieldFlags, "must be an unsigned 32-bit integer, got %v", batch[txn.FieldFlags])
	}
	modeBits := batch.Flags() & modeMask
	if bits.OnesCount32(modeBits) != 1 {
		return txn.NewValidationError(
			txn.ErrorCodeInvalidFlags,
			txn.FieldFlags,
			"batch must carry exactly one execution mode, got 0x%08x",
			batch.Flags(),
		)
	}

	fee, err := strconv.ParseUint(batch.Fee(), 10, 64)
	if err != nil || fee == 0 {
		return txn.NewValidationError(txn.ErrorCodeInvalidFee, txn.FieldFee, "batch fee must be a positive number of drops, got %q", batch.Fee())
	}

	inner := InnerTransactions(batch)
	if len(inner) < MinInnerTransactions || len(inner) > MaxInnerTransactions {
		return txn.NewValidationError(
			txn.ErrorCodeInvalidBatch,
			FieldRawTransactions,
			"batch must contain between %d and %d inner transactions, got %d",
			MinInnerTransactions,
			MaxInnerTransactions,
			len(inner),
		)
	}

	for index, record := range inner {
		field := fmt.Sprintf("%s[%d]", FieldRawTransactions, index)
		if record.Type() == TransactionTypeBatch {
			return txn.NewValidationError(txn.ErrorCodeInvalidBatch, field, "batches cannot be nested")
		}
		if _, ok := record.ParsedFlags(); !ok {
			return txn.NewValidationError(txn.ErrorCodeInvalidFlags, field, "inner Flags must be an unsigned 32-bit integer, got %v", record[txn.FieldFlags])
		}
		if !record.HasFlag(txn.FlagInnerBatchTxn) {
			return txn.NewValidationError(txn.ErrorCodeInvalidFlags, field, "inner transaction is missing tfInnerBatchTxn")
		}
		if record.Fee() != txn.FeeInnerBatch {
			return txn.NewValidationError(txn.ErrorCodeInvalidFee, field, "inner transaction fee must be %q, got %q", txn.FeeInnerBatch, record.Fee())
		}
	}

	return nil
}
