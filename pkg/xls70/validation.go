package xls70

import (
	"fmt"
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ValidateCredentialAccept validates the provided CredentialAccept record.
func ValidateCredentialAccept(record txn.Record) error {
	if record.Type() != TransactionTypeCredentialAccept {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeCredentialAccept, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}
	issuer, _ := record[FieldIssuer].(string)
	if strings.TrimSpace(issuer) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, FieldIssuer, "is required")
	}
	if issuer == record.Account() {
		return txn.NewValidationError(txn.ErrorCodeMissingField, FieldIssuer, "must differ from the accepting account")
	}
	return validateCredentialType(record)
}

// ValidateCredentialCreate validates the provided CredentialCreate record.
func ValidateCredentialCreate(record txn.Record) error {
	if record.Type() != TransactionTypeCredentialCreate {
		return fmt.Errorf("expected %s record, got %q", TransactionTypeCredentialCreate, record.Type())
	}
	if strings.TrimSpace(record.Account()) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, txn.FieldAccount, "is required")
	}
	subject, _ := record[FieldSubject].(string)
	if strings.TrimSpace(subject) == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, FieldSubject, "is required")
	}
	if uri, ok := record[FieldURI].(string); ok {
		if err := txn.ValidateHexBlob(FieldURI, uri, MaxURIBytes); err != nil {
			return err
		}
	}
	return validateCredentialType(record)
}

func validateCredentialType(record txn.Record) error {
	credentialType, _ := record[FieldCredentialType].(string)
	if credentialType == "" {
		return txn.NewValidationError(txn.ErrorCodeMissingField, FieldCredentialType, "is required")
	}
	return txn.ValidateHexBlob(FieldCredentialType, credentialType, MaxCredentialTypeBytes)
}
