package xls56

import (
	"fmt"
	"strings"
)

const (
	TransactionTypeBatch = "Batch"

	FieldRawTransactions = "RawTransactions"
	FieldRawTransaction  = "RawTransaction"
	FieldBatchSigners    = "BatchSigners"

	MinInnerTransactions = 2
	MaxInnerTransactions = 8

	// DefaultBaseFee is the per-transaction fee in drops used to size the
	// outer Batch fee when none is given.
	DefaultBaseFee int64 = 10
)

// Mode is the Batch execution-mode flag. A Batch carries exactly one.
type Mode uint32

const (
	ModeAllOrNothing Mode = 0x00010000
	ModeOnlyOne      Mode = 0x00020000
	ModeUntilFailure Mode = 0x00040000
	ModeIndependent  Mode = 0x00080000
)

const modeMask = uint32(ModeAllOrNothing | ModeOnlyOne | ModeUntilFailure | ModeIndependent)

var modeNames = map[Mode]string{
	ModeAllOrNothing: "all-or-nothing",
	ModeOnlyOne:      "only-one",
	ModeUntilFailure: "until-failure",
	ModeIndependent:  "independent",
}

// Modes returns the four execution modes in flag order.
func Modes() []Mode {
	return []Mode{ModeAllOrNothing, ModeOnlyOne, ModeUntilFailure, ModeIndependent}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(0x%08x)", uint32(m))
}

// Valid reports whether m is one of the four execution modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses a mode name such as "all-or-nothing". Underscores and
// case are ignored.
func ParseMode(value string) (Mode, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "_", "-")
	for mode, name := range modeNames {
		if name == normalized {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unsupported batch mode %q", value)
}
