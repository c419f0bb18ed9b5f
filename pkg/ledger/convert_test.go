package ledger

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nursecredx/onboarding-sdk-go/pkg/txn"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls20"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls33"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls40"
	"github.com/nursecredx/onboarding-sdk-go/pkg/xls56"
)

func TestToFlatTransactionBatch(t *testing.T) {
	mint := xls20.BuildNFTokenMintTx(xls20.NFTokenMintTxParams{
		Account:     "rIssuer",
		URIHex:      "aa",
		TransferFee: xls20.TransferFee(750),
		Flags:       xls20.FlagTransferable,
	})
	issuance := xls33.BuildMPTokenIssuanceCreateTx(xls33.MPTokenIssuanceCreateTxParams{Account: "rIssuer", Metadata: "{}"})
	batch := xls56.BuildBatchTx(xls56.BatchTxParams{
		Account: "rIssuer",
		Inner:   []txn.Record{mint, issuance},
		Mode:    xls56.ModeAllOrNothing,
		Fee:     "20",
	})

	flat, err := ToFlatTransaction(batch)
	if err != nil {
		t.Fatalf("ToFlatTransaction failed: %v", err)
	}
	if flat["Flags"] != uint32(xls56.ModeAllOrNothing) {
		t.Fatalf("unexpected outer flags: %#v", flat["Flags"])
	}

	entries, ok := flat["RawTransactions"].([]map[string]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("RawTransactions should be []map[string]any, got %T", flat["RawTransactions"])
	}
	inner, ok := entries[0]["RawTransaction"].(map[string]any)
	if !ok {
		t.Fatalf("RawTransaction should be a plain map, got %T", entries[0]["RawTransaction"])
	}
	if inner["TransferFee"] != int(750) {
		t.Fatalf("TransferFee should be an int, got %#v", inner["TransferFee"])
	}
	if inner["Sequence"] != uint32(1) {
		t.Fatalf("unexpected Sequence: %#v", inner["Sequence"])
	}
	if inner["Fee"] != "0" {
		t.Fatalf("unexpected inner Fee: %#v", inner["Fee"])
	}

	second := entries[1]["RawTransaction"].(map[string]any)
	if _, ok := second["AssetScale"]; ok {
		t.Fatalf("zero AssetScale should be omitted: %#v", second)
	}
}

func TestToFlatTransactionDecodedJSONBatch(t *testing.T) {
	payload := `{
		"TransactionType": "Batch",
		"Account": "rIssuer",
		"Fee": "20",
		"Flags": 65536,
		"RawTransactions": [
			{"RawTransaction": {"TransactionType": "DIDSet", "Account": "rNurse", "Fee": "0", "Flags": 1073741824, "URI": "AA"}},
			{"RawTransaction": {"TransactionType": "NFTokenMint", "Account": "rIssuer", "Fee": "0", "NFTokenTaxon": 0, "TransferFee": 750}}
		]
	}`
	var record txn.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}

	flat, err := ToFlatTransaction(record)
	if err != nil {
		t.Fatalf("ToFlatTransaction failed: %v", err)
	}
	entries, ok := flat["RawTransactions"].([]map[string]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("RawTransactions should be []map[string]any, got %T", flat["RawTransactions"])
	}
	mint := entries[1]["RawTransaction"].(map[string]any)
	if mint["TransferFee"] != int(750) || mint["NFTokenTaxon"] != uint32(0) {
		t.Fatalf("unexpected integer types: %#v %#v", mint["TransferFee"], mint["NFTokenTaxon"])
	}
}

func TestToFlatTransactionNarrowsJSONNumbers(t *testing.T) {
	record := txn.Record{
		"TransactionType": xls40.TransactionTypeDIDSet,
		"Account":         "rNurse",
		"Flags":           float64(0),
		"Sequence":        int(7),
	}
	flat, err := ToFlatTransaction(record)
	if err != nil {
		t.Fatalf("ToFlatTransaction failed: %v", err)
	}
	if flat["Flags"] != uint32(0) || flat["Sequence"] != uint32(7) {
		t.Fatalf("unexpected integer widths: %#v %#v", flat["Flags"], flat["Sequence"])
	}
}

func TestToFlatTransactionRejectsUncodableFields(t *testing.T) {
	testCases := []struct {
		name   string
		params xls33.MPTokenIssuanceCreateTxParams
		field  string
	}{
		{
			name:   "asset scale",
			params: xls33.MPTokenIssuanceCreateTxParams{Account: "rIssuer", AssetScale: 2},
			field:  "AssetScale",
		},
		{
			name:   "maximum amount",
			params: xls33.MPTokenIssuanceCreateTxParams{Account: "rIssuer", MaximumAmount: "1000000"},
			field:  "MaximumAmount",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issuance := xls33.BuildMPTokenIssuanceCreateTx(tc.params)
			batch := xls56.BuildBatchTx(xls56.BatchTxParams{
				Account: "rIssuer",
				Inner:   []txn.Record{xls40.BuildDIDSetTx(xls40.DIDSetTxParams{Account: "rIssuer", URI: "did"}), issuance},
				Mode:    xls56.ModeIndependent,
			})

			_, err := ToFlatTransaction(batch)
			var unsupported *UnsupportedFieldError
			if !errors.As(err, &unsupported) {
				t.Fatalf("expected UnsupportedFieldError, got %v", err)
			}
			if unsupported.Field != tc.field || unsupported.TransactionType != xls33.TransactionTypeMPTokenIssuanceCreate {
				t.Fatalf("unexpected error detail: %+v", unsupported)
			}
		})
	}
}

func TestToFlatTransactionErrors(t *testing.T) {
	if _, err := ToFlatTransaction(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
	if _, err := ToFlatTransaction(txn.Record{"Account": "rNurse"}); err == nil {
		t.Fatal("expected error for missing TransactionType")
	}
	if _, err := ToFlatTransaction(txn.Record{"TransactionType": "DIDSet", "Flags": "eight"}); err == nil {
		t.Fatal("expected error for non-numeric Flags")
	}
	if _, err := ToFlatTransaction(txn.Record{"TransactionType": "NFTokenMint", "TransferFee": 70000}); err == nil {
		t.Fatal("expected error for TransferFee overflow")
	}
}
