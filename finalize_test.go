// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFinalizeChangeBoundary walks the leftover across the change
// decision boundary one satoshi at a time: at dust plus the change
// output cost a change output appears, one satoshi below it the
// leftover is folded into the fee.
func TestFinalizeChangeBoundary(t *testing.T) {
	t.Parallel()

	selected := makeCoins(100_000)

	baseReq := testRequest(1)
	est := newFeeEstimator(baseReq)

	feeNoChange := est.feeFor(selected, false)
	boundary := baseReq.dust() + est.changeFee()

	t.Run("at boundary", func(t *testing.T) {
		t.Parallel()

		req := testRequest(
			selected[0].Amount() - feeNoChange - boundary,
		)

		res, err := finalize(selected, req, est)
		require.NoError(t, err)

		// The change output is exactly the dust threshold, the
		// minimum worth creating.
		require.True(t, res.HasChange)
		require.Equal(t, req.dust(), res.Change)
		require.Equal(t, feeNoChange+est.changeFee(), res.Fee)
		require.Equal(t, res.TotalInput, req.Target+res.Fee+res.Change)
	})

	t.Run("below boundary", func(t *testing.T) {
		t.Parallel()

		req := testRequest(
			selected[0].Amount() - feeNoChange - boundary + 1,
		)

		res, err := finalize(selected, req, est)
		require.NoError(t, err)

		// The leftover grows the fee instead of producing a dusty
		// output; no value is lost.
		require.False(t, res.HasChange)
		require.Zero(t, res.Change)
		require.Equal(t, feeNoChange+boundary-1, res.Fee)
		require.Equal(t, res.TotalInput, req.Target+res.Fee)
	})

	t.Run("zero leftover", func(t *testing.T) {
		t.Parallel()

		req := testRequest(selected[0].Amount() - feeNoChange)

		res, err := finalize(selected, req, est)
		require.NoError(t, err)

		require.False(t, res.HasChange)
		require.Equal(t, feeNoChange, res.Fee)
		require.Equal(t, res.TotalInput, req.Target+res.Fee)
	})
}

// TestFinalizeCustomDustThreshold checks that a caller-raised dust
// threshold moves the change boundary with it.
func TestFinalizeCustomDustThreshold(t *testing.T) {
	t.Parallel()

	selected := makeCoins(100_000)

	est := newFeeEstimator(testRequest(1))
	feeNoChange := est.feeFor(selected, false)

	// With the threshold raised to 10_000 sat, a 5_000 sat leftover no
	// longer earns a change output.
	req := testRequest(selected[0].Amount() - feeNoChange - 5_000)
	req.DustThreshold = 10_000

	res, err := finalize(selected, req, newFeeEstimator(req))
	require.NoError(t, err)

	require.False(t, res.HasChange)
	require.Equal(t, feeNoChange+5_000, res.Fee)
}

// TestFinalizeShortfall checks that a subset that cannot cover its own
// fee on top of the target is rejected.
func TestFinalizeShortfall(t *testing.T) {
	t.Parallel()

	selected := makeCoins(50_000)

	req := testRequest(50_000)
	est := newFeeEstimator(req)

	_, err := finalize(selected, req, est)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

// TestFinalizeWasteWithChange checks that creating change is charged to
// the waste score while the folded-fee path is not.
func TestFinalizeWasteWithChange(t *testing.T) {
	t.Parallel()

	selected := makeCoins(100_000)

	est := newFeeEstimator(testRequest(1))
	feeNoChange := est.feeFor(selected, false)

	withChange, err := finalize(
		selected, testRequest(selected[0].Amount()-feeNoChange-20_000),
		est,
	)
	require.NoError(t, err)
	require.True(t, withChange.HasChange)
	require.Equal(t, est.changeFee(), withChange.Waste)

	folded, err := finalize(
		selected, testRequest(selected[0].Amount()-feeNoChange-100),
		est,
	)
	require.NoError(t, err)
	require.False(t, folded.HasChange)
	require.Zero(t, folded.Waste)
}
