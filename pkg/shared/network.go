package shared

import (
	"fmt"
	"strings"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
	NetworkDevnet  = "devnet"
)

var defaultRPCURLs = map[string]string{
	NetworkMainnet: "https://xrplcluster.com",
	NetworkTestnet: "https://s.altnet.rippletest.net:51234",
	NetworkDevnet:  "https://s.devnet.rippletest.net:51234",
}

var defaultFaucetURLs = map[string]string{
	NetworkTestnet: "https://faucet.altnet.rippletest.net/accounts",
	NetworkDevnet:  "https://faucet.devnet.rippletest.net/accounts",
}

// NormalizeNetwork lowercases and checks a network name. Empty means testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// DefaultRPCURL returns the public JSON-RPC endpoint for a network.
func DefaultRPCURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}
	return defaultRPCURLs[normalized], nil
}

// DefaultFaucetURL returns the faucet endpoint for a network. Mainnet has no
// faucet.
func DefaultFaucetURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}
	faucetURL, ok := defaultFaucetURLs[normalized]
	if !ok {
		return "", fmt.Errorf("network %s has no faucet", normalized)
	}
	return faucetURL, nil
}
