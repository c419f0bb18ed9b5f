// Package xls56 wraps unsigned XRP Ledger transactions into an XLS-56 Batch.
//
// A Batch carries up to eight inner transactions that the ledger applies
// together under one execution mode: all-or-nothing, only-one,
// until-failure, or independent. Each inner transaction pays no fee and
// carries the tfInnerBatchTxn flag; the outer Batch pays the fee for all of
// them.
//
// BuildBatchTx never mutates the records passed to it. It copies each inner
// record, normalises the copy, and wraps the copies in order. It does not
// enforce the ledger's size limits; ValidateBatch does that for callers that
// want to fail before submission.
//
// # Getting Started
//
//	batch := xls56.BuildBatchTx(xls56.BatchTxParams{
//		Account: issuerAddress,
//		Inner:   []txn.Record{didSet, credentialAccept, nftMint},
//		Mode:    xls56.ModeAllOrNothing,
//		Fee:     xls56.DefaultBatchFee(3, xls56.DefaultBaseFee),
//	})
//
// This package is part of the NurseCredX onboarding SDK for Go.
package xls56
