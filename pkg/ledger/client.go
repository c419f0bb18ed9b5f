package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
)

type ClientConfig struct {
	Backend Backend
	Logger  *slog.Logger
}

type Client struct {
	backend Backend
	logger  *slog.Logger
}

// NewClient creates a new Client. A nil Backend yields a client whose calls
// all fail with ErrBackendUnavailable.
func NewClient(config ClientConfig) *Client {
	backend := config.Backend
	if backend == nil {
		backend = NewUnavailableBackend("no backend configured")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{backend: backend, logger: logger}
}

// Sign converts record to wire form, autofills it through the endpoint, and
// signs it with signers[0]. Other signers are not used.
func (c *Client) Sign(ctx context.Context, record txn.Record, signers []Signer) (SignedTransaction, error) {
	if len(signers) == 0 || signers[0] == nil {
		return SignedTransaction{}, ErrNoSigners
	}
	payer := signers[0]

	if payer.Address() != record.Account() {
		c.logger.Warn("signer does not match transaction account",
			slog.String("signer", payer.Address()),
			slog.String("account", record.Account()),
		)
	}
	if record.Type() == xls56.TransactionTypeBatch && xls56.RequiresBatchSigners(record) && record[xls56.FieldBatchSigners] == nil {
		c.logger.Warn("batch has inner transactions from other accounts; BatchSigners must be assembled by the caller",
			slog.String("payer", record.Account()),
			slog.Any("inner_accounts", xls56.InnerAccounts(record)),
		)
	}
	if len(signers) > 1 {
		c.logger.Debug("ignoring additional signers", slog.Int("count", len(signers)-1))
	}

	flat, err := c.backend.Convert(record)
	if err != nil {
		return SignedTransaction{}, err
	}
	if err := c.backend.Autofill(ctx, &flat); err != nil {
		return SignedTransaction{}, err
	}

	blob, hash, err := payer.Sign(flat)
	if err != nil {
		return SignedTransaction{}, err
	}

	c.logger.Debug("signed transaction",
		slog.String("type", record.Type()),
		slog.String("hash", hash),
		slog.Any("sequence", flat["Sequence"]),
		slog.Any("fee", flat["Fee"]),
	)

	return SignedTransaction{
		Blob:        blob,
		Hash:        hash,
		Signer:      payer.Address(),
		Transaction: flat,
	}, nil
}

// Submit signs record and submits it, waiting for a terminal result. The
// endpoint's response is returned as is; a rejected transaction is not an
// error at this layer.
func (c *Client) Submit(ctx context.Context, record txn.Record, signers []Signer) (SubmitResult, error) {
	signed, err := c.Sign(ctx, record, signers)
	if err != nil {
		return SubmitResult{}, err
	}

	result, err := c.backend.SubmitAndWait(ctx, signed.Blob)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("submit %s %s: %w", record.Type(), signed.Hash, err)
	}
	if result.Hash == "" {
		result.Hash = signed.Hash
	}

	c.logger.Info("transaction finalized",
		slog.String("type", record.Type()),
		slog.String("hash", result.Hash),
		slog.Bool("validated", result.Validated),
		slog.String("engine_result", result.EngineResult),
	)

	return result, nil
}

// WaitForAccount polls until address appears in a validated ledger or ctx
// ends. It returns nil at once when the backend cannot look up accounts.
func (c *Client) WaitForAccount(ctx context.Context, address string, interval time.Duration) error {
	checker, ok := c.backend.(AccountChecker)
	if !ok {
		return nil
	}
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		exists, err := checker.AccountExists(ctx, address)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		c.logger.Debug("account not validated yet", slog.String("address", address))

		select {
		case <-ctx.Done():
			return fmt.Errorf("account %s was not validated in time: %w", address, ctx.Err())
		case <-ticker.C:
		}
	}
}
