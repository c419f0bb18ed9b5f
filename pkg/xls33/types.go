package xls33

const (
	TransactionTypeMPTokenIssuanceCreate = "MPTokenIssuanceCreate"

	FieldAssetScale      = "AssetScale"
	FieldMaximumAmount   = "MaximumAmount"
	FieldTransferFee     = "TransferFee"
	FieldMPTokenMetadata = "MPTokenMetadata"

	MaxTransferFee   = 50000
	MaxMetadataBytes = 1024
	MaxMaximumAmount = uint64(0x7FFFFFFFFFFFFFFF)
)

// MPTokenIssuanceCreate flags.
const (
	FlagCanLock     uint32 = 0x00000002
	FlagRequireAuth uint32 = 0x00000004
	FlagCanEscrow   uint32 = 0x00000008
	FlagCanTrade    uint32 = 0x00000010
	FlagCanTransfer uint32 = 0x00000020
	FlagCanClawback uint32 = 0x00000040
)

const (
	issuanceFlagMask  = FlagCanLock | FlagRequireAuth | FlagCanEscrow | FlagCanTrade | FlagCanTransfer | FlagCanClawback
	universalFlagMask = uint32(0x80000000) | uint32(0x40000000)
)
