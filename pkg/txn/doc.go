// Package txn holds the record type shared by every transaction builder in the
// onboarding SDK. A Record is an unsigned XRP Ledger transaction in its JSON
// wire form: a map from field name (TransactionType, Account, Fee, Flags, ...)
// to a string, integer, or nested map/list value.
//
// The package also provides the common flag and fee constants used when a
// record is placed inside an XLS-56 Batch, hexadecimal helpers for blob
// fields, RFC 8785 canonical JSON for display and fingerprinting, and the
// ValidationError type returned by the opt-in validators in the standard
// packages.
//
// This package is part of the NurseCredX onboarding SDK for Go.
package txn
