package ledger

import (
	"fmt"

	"github.com/Peersyst/xrpl-go/binary-codec/definitions"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// Integer fields are handed over in the Go types the binary codec asserts:
// UInt32 fields as uint32 and UInt16 fields as int.
var uint32Fields = map[string]struct{}{
	"Flags":              {},
	"Sequence":           {},
	"NFTokenTaxon":       {},
	"Expiration":         {},
	"LastLedgerSequence": {},
	"SourceTag":          {},
	"DestinationTag":     {},
	"TicketSequence":     {},
	"NetworkID":          {},
}

var uint16Fields = map[string]struct{}{
	"TransferFee": {},
}

// ToFlatTransaction converts a record into the xrpl-go flat form. Nested
// records become plain maps, arrays of objects become []map[string]any, and
// integer fields get their codec types. Fields the codec has no definition
// for are rejected with an *UnsupportedFieldError.
func ToFlatTransaction(record txn.Record) (transaction.FlatTransaction, error) {
	if record == nil {
		return nil, fmt.Errorf("record is nil")
	}
	if record.Type() == "" {
		return nil, fmt.Errorf("record is missing %s", txn.FieldTransactionType)
	}

	flat, err := convertMap(record.Type(), record)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s record: %w", record.Type(), err)
	}
	return transaction.FlatTransaction(flat), nil
}

func convertMap(transactionType string, fields map[string]any) (map[string]any, error) {
	if own, ok := fields[txn.FieldTransactionType].(string); ok && own != "" {
		transactionType = own
	}

	result := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, err := definitions.Get().GetFieldInstanceByFieldName(key); err != nil {
			return nil, &UnsupportedFieldError{TransactionType: transactionType, Field: key}
		}
		converted, err := convertField(transactionType, key, value)
		if err != nil {
			return nil, err
		}
		result[key] = converted
	}
	return result, nil
}

func convertField(transactionType string, key string, value any) (any, error) {
	if _, ok := uint32Fields[key]; ok {
		return narrow(key, value, 32)
	}
	if _, ok := uint16Fields[key]; ok {
		return narrow(key, value, 16)
	}

	switch typed := value.(type) {
	case txn.Record:
		return convertMap(transactionType, typed)
	case map[string]any:
		return convertMap(transactionType, typed)
	case []txn.Record:
		items := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			converted, err := convertMap(transactionType, item)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}
		return items, nil
	case []map[string]any:
		items := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			converted, err := convertMap(transactionType, item)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}
		return items, nil
	case []any:
		return convertSlice(transactionType, typed)
	default:
		return value, nil
	}
}

// convertSlice returns []map[string]any when every element is an object,
// which is the shape rpc.Client.Autofill requires for RawTransactions.
func convertSlice(transactionType string, values []any) (any, error) {
	objects := make([]map[string]any, 0, len(values))
	for _, item := range values {
		fields, ok := txn.AsRecord(item)
		if !ok {
			break
		}
		converted, err := convertMap(transactionType, fields)
		if err != nil {
			return nil, err
		}
		objects = append(objects, converted)
	}
	if len(objects) == len(values) {
		return objects, nil
	}

	items := make([]any, 0, len(values))
	for _, item := range values {
		converted, err := convertField(transactionType, "", item)
		if err != nil {
			return nil, err
		}
		items = append(items, converted)
	}
	return items, nil
}

func narrow(key string, value any, width int) (any, error) {
	number, ok := txn.Uint32(value)
	if !ok {
		return nil, fmt.Errorf("field %s: expected an unsigned integer, got %T", key, value)
	}
	if width == 16 {
		if number > 0xFFFF {
			return nil, fmt.Errorf("field %s: %d overflows uint16", key, number)
		}
		return int(number), nil
	}
	return number, nil
}
