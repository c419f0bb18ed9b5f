// The NurseCredX onboarding SDK for Go assembles and submits the multi-step
// transactions that onboard a nurse on the XRP Ledger.
//
// Related operations are combined into one atomic Batch (XLS-56) so that
// identity, credential and license token either all land or none do.
//
// # Standards Implemented
//
//   - XLS-40: Decentralized identifiers (DIDSet, DIDDelete)
//   - XLS-70: On-ledger credentials (CredentialCreate, CredentialAccept)
//   - XLS-20 and XLS-46: NFTs and dynamic NFTs (NFTokenMint, NFTokenModify)
//   - XLS-33: Multi-purpose tokens (MPTokenIssuanceCreate)
//   - XLS-56: Atomic batch transactions (Batch)
//
// Builders in the pkg/xls* packages work offline and return plain
// transaction records. pkg/ledger signs and submits them through a JSON-RPC
// endpoint, pkg/faucet funds test accounts, and pkg/onboarding ties the
// sequence together. The onboard command in cmd/onboard drives it all from
// environment configuration.
//
// # Installation
//
//	go get github.com/nursecredx/onboarding-sdk-go@latest
package onboarding_sdk_go
