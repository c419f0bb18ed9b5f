package txn

import "fmt"

type ErrorCode string

const (
	ErrorCodeMissingField ErrorCode = "missing_field"
	ErrorCodeInvalidHex   ErrorCode = "invalid_hex"
	ErrorCodeOutOfRange   ErrorCode = "out_of_range"
	ErrorCodeInvalidFlags ErrorCode = "invalid_flags"
	ErrorCodeInvalidBatch ErrorCode = "invalid_batch"
	ErrorCodeSizeExceeded ErrorCode = "size_exceeded"
	ErrorCodeInvalidFee   ErrorCode = "invalid_fee"
)

// ValidationError reports a record that the ledger would reject.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(code ErrorCode, field string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
