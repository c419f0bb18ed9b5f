package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nursecredx/onboarding-sdk-go/pkg/faucet"
	"github.com/nursecredx/onboarding-sdk-go/pkg/ledger"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

// ErrFaucetRequired is returned when funding is requested without a faucet.
var ErrFaucetRequired = errors.New("funding requested but no faucet client is configured")

const (
	DefaultFundTimeout  = 30 * time.Second
	DefaultPollInterval = 2 * time.Second
)

type Runner struct {
	Ledger *ledger.Client
	Faucet *faucet.Client
	Logger *slog.Logger

	// FundTimeout bounds the wait for funded accounts to show up in a
	// validated ledger. PollInterval is the gap between lookups.
	FundTimeout  time.Duration
	PollInterval time.Duration
}

type RunOptions struct {
	Issuer ledger.Signer
	Nurse  ledger.Signer
	Plan   Plan
	// Fund tops up both accounts from the faucet before submitting.
	Fund bool
}

type RunResult struct {
	RunID       string              `json:"runId"`
	Batch       txn.Record          `json:"batch"`
	Fingerprint string              `json:"fingerprint"`
	Funded      []faucet.FundResult `json:"funded,omitempty"`
	Submit      ledger.SubmitResult `json:"submit"`
}

// Run funds (optionally), builds, signs and submits one onboarding batch.
func (r *Runner) Run(ctx context.Context, options RunOptions) (RunResult, error) {
	if options.Issuer == nil || options.Nurse == nil {
		return RunResult{}, fmt.Errorf("issuer and nurse signers are required")
	}
	if r.Ledger == nil {
		return RunResult{}, fmt.Errorf("ledger client is required")
	}

	result := RunResult{RunID: uuid.NewString()}
	logger := r.logger().With(slog.String("run_id", result.RunID))

	issuer := options.Issuer.Address()
	nurse := options.Nurse.Address()

	if options.Fund {
		if r.Faucet == nil {
			return result, ErrFaucetRequired
		}
		for _, address := range []string{issuer, nurse} {
			funded, err := r.Faucet.Fund(ctx, address)
			if err != nil {
				return result, fmt.Errorf("failed to fund %s: %w", address, err)
			}
			funded.Secret = ""
			result.Funded = append(result.Funded, funded)
			logger.Info("account funded", slog.String("address", funded.Address), slog.Float64("balance_xrp", funded.Balance))
		}
		if err := r.waitForFunding(ctx, issuer, nurse); err != nil {
			return result, err
		}
	}

	batch, err := BuildBatch(issuer, nurse, options.Plan)
	if err != nil {
		return result, err
	}
	result.Batch = batch

	fingerprint, err := batch.Fingerprint()
	if err != nil {
		return result, err
	}
	result.Fingerprint = fingerprint
	logger.Info("onboarding batch built",
		slog.String("issuer", issuer),
		slog.String("nurse", nurse),
		slog.String("mode", options.Plan.Mode.String()),
		slog.String("fee", batch.Fee()),
		slog.String("fingerprint", fingerprint),
	)

	submitted, err := r.Ledger.Submit(ctx, batch, []ledger.Signer{options.Issuer, options.Nurse})
	if err != nil {
		return result, fmt.Errorf("onboarding run %s failed: %w", result.RunID, err)
	}
	result.Submit = submitted

	logger.Info("onboarding batch submitted",
		slog.String("hash", submitted.Hash),
		slog.String("engine_result", submitted.EngineResult),
		slog.Bool("succeeded", submitted.Succeeded()),
	)
	return result, nil
}

func (r *Runner) waitForFunding(ctx context.Context, addresses ...string) error {
	timeout := r.FundTimeout
	if timeout <= 0 {
		timeout = DefaultFundTimeout
	}
	interval := r.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	for _, address := range addresses {
		if err := r.Ledger.WaitForAccount(waitCtx, address, interval); err != nil {
			return fmt.Errorf("funded account is not usable yet: %w", err)
		}
	}
	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
