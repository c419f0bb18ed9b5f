package onboarding

import (
	"errors"
	"testing"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls20"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls33"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls40"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls70"
)

const (
	testIssuer = "rIssuerAddress"
	testNurse  = "rNurseAddress"
)

func TestBuildBatchDefaultPlan(t *testing.T) {
	batch, err := BuildBatch(testIssuer, testNurse, DefaultPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if batch.Type() != xls56.TransactionTypeBatch || batch.Account() != testIssuer {
		t.Fatalf("unexpected batch header: %s %s", batch.Type(), batch.Account())
	}
	if batch.Flags() != uint32(xls56.ModeAllOrNothing) {
		t.Fatalf("unexpected mode flags: 0x%x", batch.Flags())
	}
	if batch.Fee() != "30" {
		t.Fatalf("expected fee 30, got %s", batch.Fee())
	}

	inner := xls56.InnerTransactions(batch)
	if len(inner) != 3 {
		t.Fatalf("expected 3 inner records, got %d", len(inner))
	}

	did, credential, mint := inner[0], inner[1], inner[2]
	if did.Type() != xls40.TransactionTypeDIDSet || did.Account() != testNurse {
		t.Fatalf("unexpected first record: %v", did)
	}
	if did[xls40.FieldURI] != txn.EncodeHex(DefaultDIDURI) {
		t.Fatalf("unexpected DID URI: %v", did[xls40.FieldURI])
	}

	if credential.Type() != xls70.TransactionTypeCredentialAccept || credential.Account() != testNurse {
		t.Fatalf("unexpected second record: %v", credential)
	}
	if credential[xls70.FieldIssuer] != testIssuer {
		t.Fatalf("unexpected credential issuer: %v", credential[xls70.FieldIssuer])
	}
	if credential[xls70.FieldCredentialType] != "6e757273655f6c6963656e7365" {
		t.Fatalf("unexpected credential type: %v", credential[xls70.FieldCredentialType])
	}

	if mint.Type() != xls20.TransactionTypeNFTokenMint || mint.Account() != testIssuer {
		t.Fatalf("unexpected third record: %v", mint)
	}
	if mint[xls20.FieldIssuer] != testNurse {
		t.Fatalf("unexpected mint issuer: %v", mint[xls20.FieldIssuer])
	}
	if mint[xls20.FieldTransferFee] != uint16(750) {
		t.Fatalf("unexpected transfer fee: %v", mint[xls20.FieldTransferFee])
	}
	if mint[xls20.FieldURI] != txn.EncodeHex(DefaultNFTMetadataURI) {
		t.Fatalf("unexpected token URI: %v", mint[xls20.FieldURI])
	}
	expectedFlags := xls20.FlagTransferable | xls20.FlagMutable | txn.FlagInnerBatchTxn
	if mint.Flags() != expectedFlags {
		t.Fatalf("expected mint flags 0x%x, got 0x%x", expectedFlags, mint.Flags())
	}

	for index, record := range inner {
		if record.Fee() != txn.FeeInnerBatch {
			t.Fatalf("record %d: expected zero fee, got %s", index, record.Fee())
		}
		if !record.HasFlag(txn.FlagInnerBatchTxn) {
			t.Fatalf("record %d: missing inner batch flag", index)
		}
	}

	if !xls56.RequiresBatchSigners(batch) {
		t.Fatal("onboarding batch spans two accounts")
	}
}

func TestBuildBatchWithShiftCredits(t *testing.T) {
	plan := DefaultPlan()
	plan.IncludeShiftCredits = true
	plan.Validate = true

	batch, err := BuildBatch(testIssuer, testNurse, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Fee() != "40" {
		t.Fatalf("expected fee 40, got %s", batch.Fee())
	}

	inner := xls56.InnerTransactions(batch)
	if len(inner) != 4 {
		t.Fatalf("expected 4 inner records, got %d", len(inner))
	}
	issuance := inner[3]
	if issuance.Type() != xls33.TransactionTypeMPTokenIssuanceCreate || issuance.Account() != testIssuer {
		t.Fatalf("unexpected issuance record: %v", issuance)
	}
	if _, ok := issuance[xls33.FieldMaximumAmount]; ok {
		t.Fatalf("default plan should leave the supply uncapped: %v", issuance[xls33.FieldMaximumAmount])
	}
	if _, ok := issuance[xls33.FieldAssetScale]; ok {
		t.Fatalf("default plan should not set AssetScale: %v", issuance[xls33.FieldAssetScale])
	}
	if issuance[xls33.FieldMPTokenMetadata] != txn.EncodeHex(DefaultShiftCreditMeta) {
		t.Fatalf("unexpected metadata: %v", issuance[xls33.FieldMPTokenMetadata])
	}
}

func TestBuildBatchWithShiftCreditCap(t *testing.T) {
	plan := DefaultPlan()
	plan.IncludeShiftCredits = true
	plan.ShiftCreditMaximum = DefaultShiftCreditMax
	plan.Validate = true

	batch, err := BuildBatch(testIssuer, testNurse, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	issuance := xls56.InnerTransactions(batch)[3]
	if issuance[xls33.FieldMaximumAmount] != DefaultShiftCreditMax {
		t.Fatalf("unexpected maximum amount: %v", issuance[xls33.FieldMaximumAmount])
	}
}

func TestBuildBatchValidDefaultPlanPassesValidation(t *testing.T) {
	plan := DefaultPlan()
	plan.Validate = true

	if _, err := BuildBatch(testIssuer, testNurse, plan); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestBuildBatchValidationFailures(t *testing.T) {
	plan := DefaultPlan()
	plan.Validate = true

	var validationErr *txn.ValidationError
	if _, err := BuildBatch(testIssuer, testIssuer, plan); !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error for self-issued credential, got %v", err)
	}

	noMode := DefaultPlan()
	noMode.Validate = true
	noMode.Mode = 0
	if _, err := BuildBatch(testIssuer, testNurse, noMode); !errors.As(err, &validationErr) || validationErr.Code != txn.ErrorCodeInvalidFlags {
		t.Fatalf("expected invalid_flags for missing mode, got %v", err)
	}
}

func TestBuildBatchWithoutValidationPassesThrough(t *testing.T) {
	plan := DefaultPlan()
	plan.Mode = 0
	plan.BaseFee = 0

	batch, err := BuildBatch(testIssuer, testIssuer, plan)
	if err != nil {
		t.Fatalf("unexpected error without validation: %v", err)
	}
	if batch.Flags() != 0 {
		t.Fatalf("expected flags to pass through, got 0x%x", batch.Flags())
	}
	if batch.Fee() != "30" {
		t.Fatalf("expected default base fee to apply, got %s", batch.Fee())
	}
}

func TestBuildBatchIsDeterministic(t *testing.T) {
	first, err := BuildBatch(testIssuer, testNurse, DefaultPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildBatch(testIssuer, testNurse, DefaultPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstPrint, err := first.Fingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondPrint, err := second.Fingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstPrint != secondPrint {
		t.Fatalf("fingerprints differ: %s vs %s", firstPrint, secondPrint)
	}
}
