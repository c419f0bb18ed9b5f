package xls70

import (
	"strings"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type CredentialAcceptTxParams struct {
	Account        string
	Issuer         string
	CredentialType string
	Fee            string
}

type CredentialCreateTxParams struct {
	Account        string
	Subject        string
	CredentialType string
	Expiration     uint32
	URI            string
	Fee            string
}

// EncodeCredentialType hex-encodes a readable credential type name such as
// "nurse_license".
func EncodeCredentialType(name string) string {
	return txn.EncodeHex(name)
}

// BuildCredentialAcceptTx builds an unsigned CredentialAccept record. The
// credential type is expected in hex and is passed through as given.
func BuildCredentialAcceptTx(params CredentialAcceptTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeCredentialAccept, strings.TrimSpace(params.Account), params.Fee)
	record[FieldIssuer] = strings.TrimSpace(params.Issuer)
	record[FieldCredentialType] = params.CredentialType
	return record
}

// BuildCredentialCreateTx builds an unsigned CredentialCreate record issued by
// Account to Subject. Expiration is seconds since the Ripple epoch; zero
// leaves the credential without expiry.
func BuildCredentialCreateTx(params CredentialCreateTxParams) txn.Record {
	record := txn.NewRecord(TransactionTypeCredentialCreate, strings.TrimSpace(params.Account), params.Fee)
	record[FieldSubject] = strings.TrimSpace(params.Subject)
	record[FieldCredentialType] = params.CredentialType
	if params.Expiration > 0 {
		record[FieldExpiration] = params.Expiration
	}
	if params.URI != "" {
		record[FieldURI] = txn.EncodeHex(params.URI)
	}
	return record
}
