package onboarding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/google/uuid"
	"github.com/nursecredx/onboarding-sdk-go/pkg/faucet"
	"github.com/nursecredx/onboarding-sdk-go/pkg/ledger"
	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
)

type stubBackend struct {
	autofilled int
	submitted  []string
	submitErr  error
}

func (b *stubBackend) Convert(record txn.Record) (transaction.FlatTransaction, error) {
	return ledger.ToFlatTransaction(record)
}

func (b *stubBackend) Autofill(_ context.Context, tx *transaction.FlatTransaction) error {
	b.autofilled++
	(*tx)["Sequence"] = uint32(7)
	return nil
}

func (b *stubBackend) SubmitAndWait(_ context.Context, blob string) (ledger.SubmitResult, error) {
	b.submitted = append(b.submitted, blob)
	if b.submitErr != nil {
		return ledger.SubmitResult{}, b.submitErr
	}
	return ledger.SubmitResult{Validated: true, EngineResult: "tesSUCCESS"}, nil
}

// fundingBackend reports each address as missing for the given number of
// lookups before it appears.
type fundingBackend struct {
	*stubBackend
	pending map[string]int
	lookups int
}

func (b *fundingBackend) AccountExists(_ context.Context, address string) (bool, error) {
	b.lookups++
	if b.pending[address] > 0 {
		b.pending[address]--
		return false, nil
	}
	return true, nil
}

func newFaucet(t *testing.T) *faucet.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"account":{"classicAddress":"rFunded"},"amount":100,"balance":100}`))
	}))
	t.Cleanup(server.Close)

	client, err := faucet.NewClient(faucet.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

type stubSigner struct {
	address string
	signed  int
}

func (s *stubSigner) Address() string {
	return s.address
}

func (s *stubSigner) Sign(transaction.FlatTransaction) (string, string, error) {
	s.signed++
	return "BLOB-" + s.address, "HASH-" + s.address, nil
}

func TestRunnerRunSubmitsSignedByIssuer(t *testing.T) {
	backend := &stubBackend{}
	issuer := &stubSigner{address: testIssuer}
	nurse := &stubSigner{address: testNurse}

	runner := &Runner{Ledger: ledger.NewClient(ledger.ClientConfig{Backend: backend})}
	result, err := runner.Run(context.Background(), RunOptions{Issuer: issuer, Nurse: nurse, Plan: DefaultPlan()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(result.RunID); err != nil {
		t.Fatalf("run ID is not a UUID: %q", result.RunID)
	}
	if issuer.signed != 1 || nurse.signed != 0 {
		t.Fatalf("expected the issuer to sign once, got issuer=%d nurse=%d", issuer.signed, nurse.signed)
	}
	if len(backend.submitted) != 1 || backend.submitted[0] != "BLOB-"+testIssuer {
		t.Fatalf("unexpected submitted blobs: %v", backend.submitted)
	}
	if result.Submit.Hash != "HASH-"+testIssuer || !result.Submit.Succeeded() {
		t.Fatalf("unexpected submit result: %+v", result.Submit)
	}

	expected, err := result.Batch.Fingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fingerprint != expected || len(result.Fingerprint) != 64 {
		t.Fatalf("unexpected fingerprint: %q", result.Fingerprint)
	}
	if len(result.Funded) != 0 {
		t.Fatalf("no funding expected, got %v", result.Funded)
	}
}

func TestRunnerRunFundsBothAccounts(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"account":{"classicAddress":"rFunded","secret":"sEdLeak"},"amount":100,"balance":100}`))
	}))
	defer server.Close()

	faucetClient, err := faucet.NewClient(faucet.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runner := &Runner{
		Ledger: ledger.NewClient(ledger.ClientConfig{Backend: &stubBackend{}}),
		Faucet: faucetClient,
	}
	result, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
		Fund:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 || len(result.Funded) != 2 {
		t.Fatalf("expected two faucet calls, got %d requests and %d results", requests, len(result.Funded))
	}
	for _, funded := range result.Funded {
		if funded.Secret != "" {
			t.Fatal("faucet secret must not be kept in the run result")
		}
	}
}

func TestRunnerRunWaitsForFundedAccounts(t *testing.T) {
	backend := &fundingBackend{stubBackend: &stubBackend{}, pending: map[string]int{testNurse: 2}}
	runner := &Runner{
		Ledger:       ledger.NewClient(ledger.ClientConfig{Backend: backend}),
		Faucet:       newFaucet(t),
		PollInterval: time.Millisecond,
	}

	_, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
		Fund:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.lookups != 4 {
		t.Fatalf("expected 1 issuer and 3 nurse lookups, got %d", backend.lookups)
	}
	if len(backend.submitted) != 1 {
		t.Fatalf("expected one submission after funding, got %d", len(backend.submitted))
	}
}

func TestRunnerRunFundTimeout(t *testing.T) {
	backend := &fundingBackend{stubBackend: &stubBackend{}, pending: map[string]int{testIssuer: 1 << 20}}
	runner := &Runner{
		Ledger:       ledger.NewClient(ledger.ClientConfig{Backend: backend}),
		Faucet:       newFaucet(t),
		FundTimeout:  20 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	}

	_, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
		Fund:   true,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if len(backend.submitted) != 0 {
		t.Fatal("nothing should be submitted while funding is pending")
	}
}

func TestRunnerRunFundWithoutFaucet(t *testing.T) {
	runner := &Runner{Ledger: ledger.NewClient(ledger.ClientConfig{Backend: &stubBackend{}})}
	_, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
		Fund:   true,
	})
	if !errors.Is(err, ErrFaucetRequired) {
		t.Fatalf("expected ErrFaucetRequired, got %v", err)
	}
}

func TestRunnerRunPropagatesSubmitError(t *testing.T) {
	submitErr := errors.New("connection reset")
	runner := &Runner{Ledger: ledger.NewClient(ledger.ClientConfig{Backend: &stubBackend{submitErr: submitErr}})}

	result, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
	})
	if !errors.Is(err, submitErr) {
		t.Fatalf("expected wrapped submit error, got %v", err)
	}
	if result.Batch == nil {
		t.Fatal("built batch should be returned alongside the error")
	}
}

func TestRunnerRunUnavailableBackend(t *testing.T) {
	runner := &Runner{Ledger: ledger.NewClient(ledger.ClientConfig{})}
	_, err := runner.Run(context.Background(), RunOptions{
		Issuer: &stubSigner{address: testIssuer},
		Nurse:  &stubSigner{address: testNurse},
		Plan:   DefaultPlan(),
	})
	if !errors.Is(err, ledger.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestRunnerRunRequiresSigners(t *testing.T) {
	runner := &Runner{Ledger: ledger.NewClient(ledger.ClientConfig{})}
	if _, err := runner.Run(context.Background(), RunOptions{Plan: DefaultPlan()}); err == nil {
		t.Fatal("expected error without signers")
	}
}
