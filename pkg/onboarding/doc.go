// Package onboarding assembles the nurse onboarding batch and drives it to
// the ledger.
//
// The batch is paid for by the issuer and carries, in order:
//
//   - DIDSet from the nurse account
//   - CredentialAccept from the nurse for the issuer's license credential
//   - NFTokenMint from the issuer with the nurse as token issuer
//   - optionally, MPTokenIssuanceCreate for shift credits
//
// BuildBatch works offline. Runner adds optional faucet funding, signing and
// submission.
package onboarding
