// Package xls20 builds XLS-20 non-fungible token transactions for the XRP
// Ledger, including the XLS-46 dynamic NFT extension.
//
// A token minted with FlagMutable can have its URI rewritten later through
// NFTokenModify, which is how a license token follows the holder's
// credential status without being reissued.
//
// # Getting Started
//
//	record := xls20.BuildNFTokenMintTx(xls20.NFTokenMintTxParams{
//		Account: "rIssuer...",
//		Issuer:  "rNurse...",
//		URIHex:  txn.EncodeHex("ipfs://cid-of-license-metadata"),
//		Flags:   xls20.FlagTransferable | xls20.FlagMutable,
//	})
//
// This package is part of the NurseCredX onboarding SDK for Go.
package xls20
