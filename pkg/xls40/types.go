package xls40

const (
	TransactionTypeDIDSet    = "DIDSet"
	TransactionTypeDIDDelete = "DIDDelete"

	FieldURI         = "URI"
	FieldData        = "Data"
	FieldDIDDocument = "DIDDocument"

	// MaxFieldBytes is the ledger limit for each DIDSet payload field.
	MaxFieldBytes = 256
)
