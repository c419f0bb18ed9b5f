package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

var (
	// ErrBackendUnavailable is returned by every call on an UnavailableBackend.
	ErrBackendUnavailable = errors.New("ledger client is not available")
	// ErrNoSigners is returned when Sign or Submit is called without signers.
	ErrNoSigners = errors.New("at least one signer is required")
)

// UnsupportedFieldError is returned by ToFlatTransaction for a field the
// bundled binary codec has no definition for. Such a record could be
// autofilled but never signed.
type UnsupportedFieldError struct {
	TransactionType string
	Field           string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("%s field %s is not supported by the transaction codec", e.TransactionType, e.Field)
}

// Signer holds a key and signs flat transactions. It never exposes the key.
type Signer interface {
	Address() string
	Sign(tx transaction.FlatTransaction) (blob string, hash string, err error)
}

// Backend is the capability set Client needs from a ledger endpoint.
type Backend interface {
	Convert(record txn.Record) (transaction.FlatTransaction, error)
	Autofill(ctx context.Context, tx *transaction.FlatTransaction) error
	SubmitAndWait(ctx context.Context, blob string) (SubmitResult, error)
}

// AccountChecker is implemented by backends that can tell whether an account
// exists in a validated ledger.
type AccountChecker interface {
	AccountExists(ctx context.Context, address string) (bool, error)
}

type SignedTransaction struct {
	Blob        string
	Hash        string
	Signer      string
	Transaction transaction.FlatTransaction
}

// SubmitResult is the terminal response for a submitted transaction. Raw
// holds the endpoint's response verbatim.
type SubmitResult struct {
	Hash         string         `json:"hash"`
	Validated    bool           `json:"validated"`
	EngineResult string         `json:"engine_result,omitempty"`
	Raw          map[string]any `json:"raw"`
}

// Succeeded reports whether the ledger validated the transaction with
// tesSUCCESS.
func (r SubmitResult) Succeeded() bool {
	return r.Validated && r.EngineResult == "tesSUCCESS"
}
