// Package faucet funds test accounts through the public XRPL test faucets.
//
// The faucet hands out test XRP on testnet and devnet only. A call without a
// destination asks the faucet to generate and fund a fresh account.
package faucet
