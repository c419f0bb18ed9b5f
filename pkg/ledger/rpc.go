package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Peersyst/xrpl-go/xrpl/queries/account"
	"github.com/Peersyst/xrpl-go/xrpl/queries/common"
	"github.com/Peersyst/xrpl-go/xrpl/rpc"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/Peersyst/xrpl-go/xrpl/transaction/types"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
)

type RPCConfig struct {
	URL string
}

// RPCBackend implements Backend with the xrpl-go JSON-RPC client. Calls
// block until the endpoint answers; ctx is only checked before each call.
type RPCBackend struct {
	url    string
	client *rpc.Client
}

// NewRPCBackend creates a new RPCBackend.
func NewRPCBackend(config RPCConfig) (*RPCBackend, error) {
	url := strings.TrimSpace(config.URL)
	if url == "" {
		return nil, fmt.Errorf("RPC URL is required")
	}

	clientConfig, err := rpc.NewClientConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid RPC URL: %w", err)
	}

	return &RPCBackend{
		url:    url,
		client: rpc.NewClient(clientConfig),
	}, nil
}

// URL returns the configured endpoint.
func (b *RPCBackend) URL() string {
	return b.url
}

func (b *RPCBackend) Convert(record txn.Record) (transaction.FlatTransaction, error) {
	return ToFlatTransaction(record)
}

// Autofill fills Sequence, Fee and LastLedgerSequence from the endpoint.
// Inner Batch transactions still carrying the placeholder sequence get their
// live account sequence instead.
func (b *RPCBackend) Autofill(ctx context.Context, tx *transaction.FlatTransaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	releasePlaceholderSequences(*tx)
	if err := b.client.Autofill(tx); err != nil {
		return fmt.Errorf("failed to autofill transaction: %w", err)
	}
	return nil
}

func releasePlaceholderSequences(tx transaction.FlatTransaction) {
	wrappers, ok := tx[xls56.FieldRawTransactions].([]map[string]any)
	if !ok {
		return
	}
	for _, wrapper := range wrappers {
		inner, ok := wrapper[xls56.FieldRawTransaction].(map[string]any)
		if !ok {
			continue
		}
		if _, ticketed := inner["TicketSequence"]; ticketed {
			continue
		}
		if inner[txn.FieldSequence] == txn.DefaultInnerSequence {
			delete(inner, txn.FieldSequence)
		}
	}
}

// AccountExists reports whether address is present in the latest validated
// ledger. actNotFound is a false result, not an error.
func (b *RPCBackend) AccountExists(ctx context.Context, address string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := b.client.GetAccountInfo(&account.InfoRequest{
		Account:     types.Address(address),
		LedgerIndex: common.Validated,
	})
	if err == nil {
		return true, nil
	}
	var clientErr *rpc.ClientError
	if errors.As(err, &clientErr) && clientErr.ErrorString == "actNotFound" {
		return false, nil
	}
	return false, fmt.Errorf("failed to look up account %s: %w", address, err)
}

func (b *RPCBackend) SubmitAndWait(ctx context.Context, blob string) (SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return SubmitResult{}, err
	}
	response, err := b.client.SubmitTxBlobAndWait(blob, false)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to submit transaction: %w", err)
	}
	return resultFromResponse(response)
}

// resultFromResponse keeps the endpoint's response as a JSON map and lifts
// the fields callers branch on.
func resultFromResponse(response any) (SubmitResult, error) {
	payload, err := json.Marshal(response)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to encode submit response: %w", err)
	}

	raw := map[string]any{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return SubmitResult{}, fmt.Errorf("failed to decode submit response: %w", err)
	}

	result := SubmitResult{Raw: raw}
	result.Hash, _ = raw["hash"].(string)
	result.Validated, _ = raw["validated"].(bool)

	if meta, ok := raw["meta"].(map[string]any); ok {
		result.EngineResult, _ = meta["TransactionResult"].(string)
	}
	if result.EngineResult == "" {
		result.EngineResult, _ = raw["engine_result"].(string)
	}

	return result, nil
}
