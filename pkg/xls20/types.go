package xls20

const (
	TransactionTypeNFTokenMint   = "NFTokenMint"
	TransactionTypeNFTokenModify = "NFTokenModify"

	FieldIssuer       = "Issuer"
	FieldURI          = "URI"
	FieldTransferFee  = "TransferFee"
	FieldNFTokenTaxon = "NFTokenTaxon"
	FieldNFTokenID    = "NFTokenID"
	FieldOwner        = "Owner"

	// MaxTransferFee is 50% expressed in units of 1/100000.
	MaxTransferFee = 50000
	MaxURIBytes    = 256
)

// NFTokenMint flags.
const (
	FlagBurnable     uint32 = 0x00000001
	FlagOnlyXRP      uint32 = 0x00000002
	FlagTrustLine    uint32 = 0x00000004
	FlagTransferable uint32 = 0x00000008
	FlagMutable      uint32 = 0x00000010
)

const (
	mintFlagMask      = FlagBurnable | FlagOnlyXRP | FlagTrustLine | FlagTransferable | FlagMutable
	universalFlagMask = uint32(0x80000000) | uint32(0x40000000)
)
