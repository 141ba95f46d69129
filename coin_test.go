// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

// TestSortCoins checks the canonical orderings and their tie-breaks:
// value first, then outpoint, so equal-valued coins always order the
// same way.
func TestSortCoins(t *testing.T) {
	t.Parallel()

	coins := []Coin{
		makeCoin(20_000, 3),
		makeCoin(50_000, 1),
		makeCoin(20_000, 2),
		makeCoin(10_000, 4),
	}

	desc := sortCoinsDesc(coins)
	require.Equal(t, btcutil.Amount(50_000), desc[0].Amount())
	require.Equal(t, btcutil.Amount(10_000), desc[3].Amount())

	// The equal-valued pair orders by outpoint, seed 2 before seed 3.
	require.Equal(t, uint32(2), desc[1].OutPoint.Index)
	require.Equal(t, uint32(3), desc[2].OutPoint.Index)

	asc := sortCoinsAsc(coins)
	require.Equal(t, btcutil.Amount(10_000), asc[0].Amount())
	require.Equal(t, btcutil.Amount(50_000), asc[3].Amount())
	require.Equal(t, uint32(2), asc[1].OutPoint.Index)

	// Sorting copies; the caller's slice keeps its order.
	require.Equal(t, btcutil.Amount(20_000), coins[0].Amount())
}

// TestValidateCoins checks duplicate outpoint detection.
func TestValidateCoins(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateCoins(makeCoins(10_000, 20_000)))

	dup := makeCoin(10_000, 1)
	err := validateCoins([]Coin{dup, makeCoin(20_000, 2), dup})
	require.ErrorIs(t, err, ErrDuplicateCoin)
}

// TestSumValue checks the total over an empty and a populated slice.
func TestSumValue(t *testing.T) {
	t.Parallel()

	require.Zero(t, sumValue(nil))
	require.Equal(
		t, btcutil.Amount(60_000),
		sumValue(makeCoins(10_000, 20_000, 30_000)),
	)
}
