// Package ledger signs and submits records built by the onboarding SDK.
//
// The package talks to the XRP Ledger through a narrow Backend capability:
// convert a record to the SDK's flat wire form, autofill the server-dependent
// fields (Sequence, Fee, LastLedgerSequence), and submit a signed blob while
// waiting for a validated or rejected result. RPCBackend implements it with
// the xrpl-go JSON-RPC client; UnavailableBackend fails every call so that
// record construction stays usable when no endpoint is configured.
//
// Client.Sign autofills and signs with the first signer only. A Batch whose
// inner transactions come from several accounts also needs a BatchSigners
// field, which this package does not assemble; Client logs a warning and
// leaves the multi-party step to the caller.
//
// Endpoint errors are returned wrapped and unmodified. Nothing is retried:
// partial-failure semantics of a Batch are decided by the ledger through the
// execution mode.
//
// This package is part of the NurseCredX onboarding SDK for Go.
package ledger
