// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
)

// BranchAndBoundStrategy searches for a changeless solution: a subset
// whose effective value lands inside the window
//
//	[target+fee, target+fee+dustThreshold)
//
// so the spend needs no change output at all. The search explores an
// include/exclude binary tree over the coins in descending value order,
// pruning branches that overshoot the window or can no longer reach it,
// and gives up with ErrNoSolution once the iteration budget is spent.
// The first solution discovered wins, which under descending order
// prefers the fewest, largest inputs.
type BranchAndBoundStrategy struct{}

// A compile time check to ensure BranchAndBoundStrategy implements the
// Strategy interface.
var _ Strategy = (*BranchAndBoundStrategy)(nil)

// Name returns the identifier the strategy registers under.
func (*BranchAndBoundStrategy) Name() Algorithm {
	return AlgoBranchAndBound
}

// bnbFrame is one level of the explicit search stack: the coin
// considered at this depth and whether the current branch includes it.
// An explicit stack is used instead of recursion so the iteration
// budget, not the call-stack limit, bounds the search.
type bnbFrame struct {
	index    int
	included bool
}

// Select runs the changeless search.
func (s *BranchAndBoundStrategy) Select(coins []Coin, req *Request) (*Result,
	error) {

	pool, est, err := preparePool(coins, req)
	if err != nil {
		return nil, err
	}

	selected, err := searchChangeless(pool, req, est)
	if err != nil {
		return nil, err
	}

	return finalize(selected, req, est)
}

// searchChangeless performs the depth-first include/exclude search over
// effective values. Working with effective values (coin value net of
// its own input fee) makes the target window a constant: a subset is
// changeless when its summed effective value falls within
// [target+fixedFee, target+fixedFee+dust). Summing per-input truncated
// fees can overstate a subset by a few satoshis against the fee
// truncated once over the whole transaction vsize, so window hits are
// verified against the definitive fee before being accepted.
func searchChangeless(pool []Coin, req *Request, est feeEstimator) ([]Coin,
	error) {

	// The pool arrives sorted by descending value; compute each coin's
	// effective value and the suffix sums used for the reachability
	// bound.
	eff := make([]btcutil.Amount, len(pool))
	for i, c := range pool {
		eff[i] = est.effectiveValue(c)
	}

	// remaining[i] is the total effective value of pool[i:].
	remaining := make([]btcutil.Amount, len(pool)+1)
	for i := len(pool) - 1; i >= 0; i-- {
		remaining[i] = remaining[i+1] + eff[i]
	}

	lower := req.Target + est.fixedFee(false)
	upper := lower + req.dust() - 1

	maxInputs := req.maxInputs(len(pool))

	// Depth-first search with an explicit stack. Each coin is first
	// tried included, then flipped to excluded on backtrack.
	stack := make([]bnbFrame, 0, maxInputs)
	stack = append(stack, bnbFrame{index: 0, included: true})

	var (
		current  btcutil.Amount = eff[0]
		included                = 1
		tries    int
	)

	for len(stack) > 0 {
		tries++
		if tries > selectionIterationBudget {
			log.Debugf("Branch and bound budget of %d exhausted "+
				"after depth %d, no changeless solution",
				selectionIterationBudget, len(stack))

			return nil, ErrNoSolution
		}

		top := stack[len(stack)-1]

		// Within the window: the first subset that also covers the
		// whole-vsize fee wins. A subset the rounding leaves short
		// keeps descending like any branch below the window.
		if current >= lower && current <= upper {
			selected := make([]Coin, 0, included)
			for _, f := range stack {
				if f.included {
					selected = append(
						selected, pool[f.index],
					)
				}
			}

			need := req.Target + est.feeFor(selected, false)
			if sumValue(selected) >= need {
				log.Debugf("Branch and bound found "+
					"changeless solution with %d inputs "+
					"after %d tries", len(selected), tries)

				return selected, nil
			}
		}

		switch {
		// Overshot the window. Coins are sorted descending, so no
		// further exclusion below this branch can help; backtrack.
		case current > upper:

		// The remaining coins cannot lift this branch into the
		// window; backtrack.
		case current+remaining[top.index+1] < lower:

		// The input cap is reached and the branch is still short of
		// the window; backtrack.
		case included == maxInputs:

		// Descend: try including the next coin.
		case top.index+1 < len(pool):
			next := top.index + 1
			stack = append(stack, bnbFrame{
				index:    next,
				included: true,
			})
			current += eff[next]
			included++

			continue
		}

		// Backtrack: flip the deepest included coin to excluded, and
		// drop frames that have already exhausted both branches.
		for len(stack) > 0 {
			last := len(stack) - 1
			if stack[last].included {
				current -= eff[stack[last].index]
				included--
				stack[last].included = false

				break
			}

			stack = stack[:last]
		}
	}

	log.Debugf("Branch and bound exhausted search space after %d "+
		"tries, no changeless solution", tries)

	return nil, ErrNoSolution
}
