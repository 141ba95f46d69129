// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// Coin represents a spendable UTXO which is available for coin
// selection. Coins are owned by the caller and are only borrowed by the
// engine for the duration of a single selection call; the engine never
// mutates them.
type Coin struct {
	wire.TxOut
	wire.OutPoint

	// Confirmations is the number of confirmations the output's
	// transaction has at the time the coin was fetched.
	Confirmations int32
}

// Amount returns the coin's value as a btcutil.Amount.
func (c Coin) Amount() btcutil.Amount {
	return btcutil.Amount(c.Value)
}

// String returns a human-readable description of the coin.
func (c Coin) String() string {
	return fmt.Sprintf("%v (%v)", c.OutPoint, c.Amount())
}

// sumValue returns the total value of the given coins.
func sumValue(coins []Coin) btcutil.Amount {
	var total btcutil.Amount
	for _, c := range coins {
		total += c.Amount()
	}

	return total
}

// validateCoins checks a coin collection for duplicate outpoints. It
// returns ErrDuplicateCoin if any outpoint appears more than once.
func validateCoins(coins []Coin) error {
	seen := make(map[wire.OutPoint]struct{}, len(coins))
	for _, c := range coins {
		if _, ok := seen[c.OutPoint]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateCoin,
				c.OutPoint)
		}

		seen[c.OutPoint] = struct{}{}
	}

	return nil
}

// coinLess is the deterministic ordering used to break ties between
// coins of equal value: lexicographic on the txid, then the output
// index. Selection must be a pure function of its inputs, so equal
// values cannot be left to an unstable sort.
func coinLess(a, b Coin) bool {
	if cmp := bytes.Compare(a.Hash[:], b.Hash[:]); cmp != 0 {
		return cmp < 0
	}

	return a.OutPoint.Index < b.OutPoint.Index
}

// sortCoinsDesc sorts a copy of the given coins by descending value,
// breaking ties by outpoint. The input slice is not modified.
func sortCoinsDesc(coins []Coin) []Coin {
	sorted := make([]Coin, len(coins))
	copy(sorted, coins)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}

		return coinLess(sorted[i], sorted[j])
	})

	return sorted
}

// sortCoinsAsc sorts a copy of the given coins by ascending value,
// breaking ties by outpoint. The input slice is not modified.
func sortCoinsAsc(coins []Coin) []Coin {
	sorted := make([]Coin, len(coins))
	copy(sorted, coins)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value < sorted[j].Value
		}

		return coinLess(sorted[i], sorted[j])
	})

	return sorted
}
