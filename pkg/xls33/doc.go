// Package xls33 builds XLS-33 multi-purpose token issuance transactions for
// the XRP Ledger. The onboarding flow uses an issuance to represent shift
// credits that can be escrowed and transferred between authorized holders.
//
// This package is part of the NurseCredX onboarding SDK for Go.
package xls33
