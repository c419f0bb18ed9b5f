// Package xls70 builds XLS-70 on-ledger credential transactions for the XRP
// Ledger. An issuer provisions a credential with CredentialCreate and the
// subject confirms it with CredentialAccept; only accepted credentials count
// for authorization checks.
//
// This package is part of the NurseCredX onboarding SDK for Go.
package xls70
