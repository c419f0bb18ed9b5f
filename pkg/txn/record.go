package txn

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/gowebpki/jcs"
)

const (
	FieldTransactionType = "TransactionType"
	FieldAccount         = "Account"
	FieldFee             = "Fee"
	FieldFlags           = "Flags"
	FieldSequence        = "Sequence"
	FieldSigningPubKey   = "SigningPubKey"
)

const (
	// FeeInnerBatch is the fee every inner transaction of a Batch must carry.
	FeeInnerBatch = "0"
	// DefaultInnerSequence is the placeholder sequence given to inner
	// transactions. The server replaces it during autofill or simulation.
	DefaultInnerSequence uint32 = 1
	// FlagInnerBatchTxn (tfInnerBatchTxn) marks a transaction as an inner
	// transaction of a Batch.
	FlagInnerBatchTxn uint32 = 0x40000000
)

// Record is an unsigned transaction in XRPL JSON wire form.
type Record map[string]any

// NewRecord creates a record with the fields shared by every transaction kind.
func NewRecord(transactionType string, account string, fee string) Record {
	if fee == "" {
		fee = FeeInnerBatch
	}
	return Record{
		FieldTransactionType: transactionType,
		FieldAccount:         account,
		FieldFee:             fee,
		FieldFlags:           uint32(0),
	}
}

// Type returns the TransactionType discriminator.
func (r Record) Type() string {
	value, _ := r[FieldTransactionType].(string)
	return value
}

// Account returns the originating account.
func (r Record) Account() string {
	value, _ := r[FieldAccount].(string)
	return value
}

// Fee returns the fee in drops as it is stored on the record.
func (r Record) Fee() string {
	switch value := r[FieldFee].(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// Flags returns the Flags field. A missing or non-numeric value reads as 0;
// use ParsedFlags to tell those apart.
func (r Record) Flags() uint32 {
	flags, _ := Uint32(r[FieldFlags])
	return flags
}

// ParsedFlags returns the Flags field and whether it is usable. A missing
// field is 0 and usable; a value that is not an unsigned 32-bit integer is
// not.
func (r Record) ParsedFlags() (uint32, bool) {
	value, ok := r[FieldFlags]
	if !ok || value == nil {
		return 0, true
	}
	return Uint32(value)
}

// SetFlags replaces the Flags field.
func (r Record) SetFlags(flags uint32) {
	r[FieldFlags] = flags
}

// HasFlag reports whether every bit of flag is set.
func (r Record) HasFlag(flag uint32) bool {
	return r.Flags()&flag == flag
}

// Clone returns a deep copy of the record. Nested maps and lists are copied
// so the result can be changed without touching the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	clone := make(Record, len(r))
	for key, value := range r {
		clone[key] = cloneValue(value)
	}
	return clone
}

// CanonicalJSON returns the record serialized as RFC 8785 canonical JSON.
func (r Record) CanonicalJSON() ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s record: %w", r.Type(), err)
	}
	canonical, err := jcs.Transform(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize %s record: %w", r.Type(), err)
	}
	return canonical, nil
}

// Fingerprint returns the hex SHA-256 of the canonical JSON form.
func (r Record) Fingerprint() (string, error) {
	canonical, err := r.CanonicalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// AsRecord returns value as a Record when it holds a field map.
func AsRecord(value any) (Record, bool) {
	switch typed := value.(type) {
	case Record:
		return typed, true
	case map[string]any:
		return Record(typed), true
	default:
		return nil, false
	}
}

// Uint32 converts the integer representations found in records, including
// those produced by encoding/json, into a uint32.
func Uint32(value any) (uint32, bool) {
	switch typed := value.(type) {
	case uint32:
		return typed, true
	case uint16:
		return uint32(typed), true
	case uint8:
		return uint32(typed), true
	case uint:
		if uint64(typed) > math.MaxUint32 {
			return 0, false
		}
		return uint32(typed), true
	case uint64:
		if typed > math.MaxUint32 {
			return 0, false
		}
		return uint32(typed), true
	case int:
		if typed < 0 || int64(typed) > math.MaxUint32 {
			return 0, false
		}
		return uint32(typed), true
	case int32:
		if typed < 0 {
			return 0, false
		}
		return uint32(typed), true
	case int64:
		if typed < 0 || typed > math.MaxUint32 {
			return 0, false
		}
		return uint32(typed), true
	case float64:
		if typed < 0 || typed > math.MaxUint32 || typed != math.Trunc(typed) {
			return 0, false
		}
		return uint32(typed), true
	case json.Number:
		parsed, err := typed.Int64()
		if err != nil {
			return 0, false
		}
		return Uint32(parsed)
	default:
		return 0, false
	}
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case Record:
		return typed.Clone()
	case map[string]any:
		return map[string]any(Record(typed).Clone())
	case []any:
		items := make([]any, len(typed))
		for index, item := range typed {
			items[index] = cloneValue(item)
		}
		return items
	case []Record:
		items := make([]Record, len(typed))
		for index, item := range typed {
			items[index] = item.Clone()
		}
		return items
	default:
		return value
	}
}
