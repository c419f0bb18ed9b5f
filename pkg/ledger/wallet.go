package ledger

import (
	"fmt"
	"strings"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"
)

// Wallet is a Signer backed by an xrpl-go wallet.
type Wallet struct {
	wallet wallet.Wallet
}

// NewWalletFromSeed derives a wallet from a family seed (s...).
func NewWalletFromSeed(seed string) (*Wallet, error) {
	trimmed := strings.TrimSpace(seed)
	if trimmed == "" {
		return nil, fmt.Errorf("seed cannot be empty")
	}

	derived, err := wallet.FromSeed(trimmed, "")
	if err != nil {
		return nil, fmt.Errorf("failed to derive wallet from seed: %w", err)
	}
	return &Wallet{wallet: derived}, nil
}

// Address returns the classic address.
func (w *Wallet) Address() string {
	return string(w.wallet.ClassicAddress)
}

// Sign signs tx and returns the blob and its hash. The binary codec panics on
// values of an unexpected Go type; that is reported as an error.
func (w *Wallet) Sign(tx transaction.FlatTransaction) (blob string, hash string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			blob, hash = "", ""
			err = fmt.Errorf("failed to encode %v transaction: %v", tx["TransactionType"], recovered)
		}
	}()

	blob, hash, err = w.wallet.Sign(tx)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign %v transaction: %w", tx["TransactionType"], err)
	}
	return blob, hash, nil
}
