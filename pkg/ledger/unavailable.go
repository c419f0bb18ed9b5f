package ledger

import (
	"context"
	"fmt"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// UnavailableBackend is the Backend used when no ledger endpoint can be
// reached or configured. Every call fails with ErrBackendUnavailable.
type UnavailableBackend struct {
	reason string
}

// NewUnavailableBackend creates a Backend that rejects every call.
func NewUnavailableBackend(reason string) *UnavailableBackend {
	return &UnavailableBackend{reason: reason}
}

func (b *UnavailableBackend) err() error {
	if b.reason == "" {
		return ErrBackendUnavailable
	}
	return fmt.Errorf("%w: %s", ErrBackendUnavailable, b.reason)
}

func (b *UnavailableBackend) Convert(txn.Record) (transaction.FlatTransaction, error) {
	return nil, b.err()
}

func (b *UnavailableBackend) Autofill(context.Context, *transaction.FlatTransaction) error {
	return b.err()
}

func (b *UnavailableBackend) SubmitAndWait(context.Context, string) (SubmitResult, error) {
	return SubmitResult{}, b.err()
}
