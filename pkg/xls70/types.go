package xls70

const (
	TransactionTypeCredentialCreate = "CredentialCreate"
	TransactionTypeCredentialAccept = "CredentialAccept"

	FieldIssuer         = "Issuer"
	FieldSubject        = "Subject"
	FieldCredentialType = "CredentialType"
	FieldExpiration     = "Expiration"
	FieldURI            = "URI"

	MaxCredentialTypeBytes = 64
	MaxURIBytes            = 256
)
