// Package shared provides common utilities used across the NurseCredX
// onboarding SDK for Go. It includes network normalization with default
// JSON-RPC and faucet endpoints, environment configuration loading (with
// .env discovery), and the structured logger used by the CLI.
//
// # Environment Variables
//
//	NETWORK       testnet (default), devnet, or mainnet
//	RPC_URL       JSON-RPC endpoint; required for submission
//	ISSUER_SEED   family seed of the issuing (paying) account; required
//	NURSE_SEED    family seed of the credential subject; required
//	FAUCET_URL    overrides the network faucet
//	LOG_LEVEL     debug, info, warn, or error
//	LOG_FORMAT    text or json
//
// Values already present in the process environment take precedence over a
// .env file found in the working directory or any of its parents.
package shared
