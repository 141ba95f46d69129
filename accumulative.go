// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// AccumulativeStrategy greedily accumulates coins in descending value
// order until the running total covers the target plus the fee for the
// inputs selected so far. It is deterministic, runs in O(n log n), and
// always produces a solution when the available funds suffice.
type AccumulativeStrategy struct{}

// A compile time check to ensure AccumulativeStrategy implements the
// Strategy interface.
var _ Strategy = (*AccumulativeStrategy)(nil)

// Name returns the identifier the strategy registers under.
func (*AccumulativeStrategy) Name() Algorithm {
	return AlgoAccumulative
}

// Select picks coins largest-first until the target plus fee is met.
func (s *AccumulativeStrategy) Select(coins []Coin, req *Request) (*Result,
	error) {

	pool, est, err := preparePool(coins, req)
	if err != nil {
		return nil, err
	}

	selected, err := accumulate(pool, req, est)
	if err != nil {
		return nil, err
	}

	return finalize(selected, req, est)
}

// accumulate walks the pool in its given order, adding coins until the
// running total is at least the target plus the fee for the current
// input count. The fee is recomputed on every addition since it depends
// on the final number of inputs. The only failure mode is the input
// cap: preparePool has already verified that the pool as a whole can
// cover the target.
func accumulate(pool []Coin, req *Request, est feeEstimator) ([]Coin,
	error) {

	maxInputs := req.maxInputs(len(pool))
	selected := make([]Coin, 0, maxInputs)

	var total btcutil.Amount
	for _, c := range pool {
		selected = append(selected, c)
		total += c.Amount()

		need := req.Target + est.feeFor(selected, false)
		if total >= need {
			return selected, nil
		}

		if len(selected) == maxInputs {
			break
		}
	}

	return nil, fmt.Errorf("%w: input cap of %d reached before "+
		"covering target", ErrNoSolution, maxInputs)
}
