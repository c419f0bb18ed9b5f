// Package xls40 builds XLS-40 decentralized identifier transactions for the
// XRP Ledger. DIDSet associates a DID document, URI, or attestation data with
// an account; DIDDelete removes it.
//
// Builders are pure data shaping and never fail. Use ValidateDIDSet to check a
// record locally before submission; otherwise the ledger reports a DIDSet
// without any payload field as malformed.
//
//	record := xls40.BuildDIDSetTx(xls40.DIDSetTxParams{
//		Account: "rNurse...",
//		URI:     "did:xrpl:nurse12345",
//	})
//
// This package is part of the NurseCredX onboarding SDK for Go.
package xls40
