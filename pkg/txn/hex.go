package txn

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeHex returns the lowercase hexadecimal form of the UTF-8 bytes of value.
func EncodeHex(value string) string {
	return hex.EncodeToString([]byte(value))
}

// DecodeHex decodes a hex blob field. Upper and lower case are accepted.
func DecodeHex(value string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid hex blob: %w", err)
	}
	return decoded, nil
}

// IsHex reports whether value is a non-empty, even-length hex string.
func IsHex(value string) bool {
	if value == "" || len(value)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(value)
	return err == nil
}

// ValidateHexBlob checks that a hex blob field decodes to at most maxBytes.
func ValidateHexBlob(field string, value string, maxBytes int) error {
	if !IsHex(value) {
		return NewValidationError(ErrorCodeInvalidHex, field, "must be an even-length hex string")
	}
	if len(value)/2 > maxBytes {
		return NewValidationError(
			ErrorCodeSizeExceeded,
			field,
			"must not exceed %d bytes, got %d",
			maxBytes,
			len(value)/2,
		)
	}
	return nil
}
