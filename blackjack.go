// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
)

// BlackjackStrategy seeks a subset whose total lands as close as
// possible to target+fee without exceeding it by more than a small
// overshoot tolerance, like aiming for the exact point value in the
// card game without busting. Combinations are tried in order of
// increasing input count so fewer inputs are preferred. When nothing
// stays within tolerance, the combination with the smallest overshoot
// wins and the overshoot becomes change, subject to the usual dust
// rule.
type BlackjackStrategy struct{}

// A compile time check to ensure BlackjackStrategy implements the
// Strategy interface.
var _ Strategy = (*BlackjackStrategy)(nil)

// Name returns the identifier the strategy registers under.
func (*BlackjackStrategy) Name() Algorithm {
	return AlgoBlackjack
}

// Select runs the exact-target search.
func (s *BlackjackStrategy) Select(coins []Coin, req *Request) (*Result,
	error) {

	pool, est, err := preparePool(coins, req)
	if err != nil {
		return nil, err
	}

	// The overshoot tolerance is the dust threshold: any excess below
	// it would be folded into the fee anyway, so such a subset is as
	// good as exact.
	tolerance := req.dust()

	var (
		best          []Coin
		bestOvershoot btcutil.Amount
		tries         int
	)

	maxInputs := req.maxInputs(len(pool))
	comb := newCombinations(len(pool))

	for k := 1; k <= maxInputs; k++ {
		for comb.reset(k); comb.next(); {
			tries++
			if tries > selectionIterationBudget {
				log.Debugf("Blackjack budget of %d "+
					"exhausted at %d inputs",
					selectionIterationBudget, k)

				return blackjackFallback(best, req, est)
			}

			candidate := comb.pick(pool)

			total := sumValue(candidate)
			need := req.Target + est.feeFor(candidate, false)
			if total < need {
				continue
			}

			overshoot := total - need

			// Within tolerance: increasing input count order
			// makes this the preferred hit, take it.
			if overshoot <= tolerance {
				log.Debugf("Blackjack hit with %d inputs, "+
					"overshoot %v", k, overshoot)

				return finalize(cloneCoins(candidate), req,
					est)
			}

			if best == nil || overshoot < bestOvershoot {
				best = cloneCoins(candidate)
				bestOvershoot = overshoot
			}
		}
	}

	return blackjackFallback(best, req, est)
}

// blackjackFallback finalizes the smallest-overshoot subset found, or
// reports ErrNoSolution when the search produced nothing at all.
func blackjackFallback(best []Coin, req *Request, est feeEstimator) (*Result,
	error) {

	if best == nil {
		return nil, ErrNoSolution
	}

	return finalize(best, req, est)
}

// combinations enumerates k-element index subsets of [0, n) in
// lexicographic order. The same enumerator is reset for each input
// count so the backing arrays are allocated once per call.
type combinations struct {
	n       int
	k       int
	indices []int
	scratch []Coin
	started bool
}

func newCombinations(n int) *combinations {
	return &combinations{
		n:       n,
		indices: make([]int, n),
		scratch: make([]Coin, n),
	}
}

// reset rewinds the enumerator to produce subsets of size k.
func (c *combinations) reset(k int) {
	c.k = k
	c.started = false
}

// next advances to the following combination, returning false once the
// subsets of the current size are exhausted.
func (c *combinations) next() bool {
	if c.k > c.n {
		return false
	}

	if !c.started {
		for i := 0; i < c.k; i++ {
			c.indices[i] = i
		}
		c.started = true

		return true
	}

	// Find the rightmost index that can still be advanced.
	i := c.k - 1
	for i >= 0 && c.indices[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return false
	}

	c.indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}

	return true
}

// pick materializes the current combination from the pool. The result
// aliases an internal scratch buffer; callers that keep it must copy.
func (c *combinations) pick(pool []Coin) []Coin {
	picked := c.scratch[:0]
	for i := 0; i < c.k; i++ {
		picked = append(picked, pool[c.indices[i]])
	}

	return picked
}

// cloneCoins copies a coin slice so it no longer aliases enumerator
// scratch space.
func cloneCoins(coins []Coin) []Coin {
	cloned := make([]Coin, len(coins))
	copy(cloned, coins)

	return cloned
}
