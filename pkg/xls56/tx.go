package xls56

import (
	"strconv"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type BatchTxParams struct {
	Account string
	Inner   []txn.Record
	Mode    Mode
	Fee     string
}

// BuildBatchTx wraps copies of the inner records in a Batch record. The mode
// is stored as given; an empty Fee defaults to DefaultBatchFee.
func BuildBatchTx(params BatchTxParams) txn.Record {
	rawTransactions := make([]any, 0, len(params.Inner))
	for _, inner := range params.Inner {
		rawTransactions = append(rawTransactions, map[string]any{
			FieldRawTransaction: map[string]any(NormalizeInnerTx(inner)),
		})
	}

	fee := strings.TrimSpace(params.Fee)
	if fee == "" {
		fee = DefaultBatchFee(len(params.Inner), DefaultBaseFee)
	}

	record := txn.NewRecord(TransactionTypeBatch, strings.TrimSpace(params.Account), fee)
	record.SetFlags(uint32(params.Mode))
	record[FieldRawTransactions] = rawTransactions
	return record
}

// NormalizeInnerTx returns a copy of record prepared for inclusion in a
// Batch: tfInnerBatchTxn is OR-ed into Flags, Fee is forced to "0", and a
// placeholder Sequence and empty SigningPubKey are added when absent. Flags
// that are not a number are left as they are for ValidateBatch to report.
func NormalizeInnerTx(record txn.Record) txn.Record {
	inner := record.Clone()
	if inner == nil {
		inner = txn.Record{}
	}

	if flags, ok := inner.ParsedFlags(); ok {
		inner.SetFlags(flags | txn.FlagInnerBatchTxn)
	}
	inner[txn.FieldFee] = txn.FeeInnerBatch

	if _, ok := inner[txn.FieldSequence]; !ok {
		inner[txn.FieldSequence] = txn.DefaultInnerSequence
	}
	if _, ok := inner[txn.FieldSigningPubKey]; !ok {
		inner[txn.FieldSigningPubKey] = ""
	}

	return inner
}

// InnerTransactions returns the records wrapped by a Batch, in order.
// Entries that are not field maps are skipped.
func InnerTransactions(batch txn.Record) []txn.Record {
	var entries []any
	switch typed := batch[FieldRawTransactions].(type) {
	case []any:
		entries = typed
	case []map[string]any:
		for _, entry := range typed {
			entries = append(entries, entry)
		}
	}

	result := make([]txn.Record, 0, len(entries))
	for _, entry := range entries {
		wrapper, ok := txn.AsRecord(entry)
		if !ok {
			continue
		}
		inner, ok := txn.AsRecord(wrapper[FieldRawTransaction])
		if !ok {
			continue
		}
		result = append(result, inner)
	}
	return result
}

// InnerAccounts returns the distinct accounts of the inner transactions in
// first-seen order.
func InnerAccounts(batch txn.Record) []string {
	seen := make(map[string]struct{})
	accounts := make([]string, 0)
	for _, inner := range InnerTransactions(batch) {
		account := inner.Account()
		if account == "" {
			continue
		}
		if _, ok := seen[account]; ok {
			continue
		}
		seen[account] = struct{}{}
		accounts = append(accounts, account)
	}
	return accounts
}

// RequiresBatchSigners reports whether any inner transaction originates from
// an account other than the Batch payer.
func RequiresBatchSigners(batch txn.Record) bool {
	for _, account := range InnerAccounts(batch) {
		if account != batch.Account() {
			return true
		}
	}
	return false
}

// DefaultBatchFee returns innerCount*baseFee drops as a fee string.
func DefaultBatchFee(innerCount int, baseFee int64) string {
	if innerCount < 1 {
		innerCount = 1
	}
	if baseFee <= 0 {
		baseFee = DefaultBaseFee
	}
	return strconv.FormatInt(int64(innerCount)*baseFee, 10)
}
