// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// selectionIterationBudget bounds the number of states any single
// search-based strategy may examine. It keeps a selection call from
// scanning an exponential search space on large, fragmented coin
// collections: once the budget is spent the strategy reports
// ErrNoSolution instead of continuing. The value mirrors the total-try
// cap used by Bitcoin Core's branch and bound implementation.
const selectionIterationBudget = 100_000

// Strategy is the common contract implemented by every selection
// algorithm. Implementations are stateless and safe for concurrent use;
// all per-call state lives on the stack of Select.
type Strategy interface {
	// Name returns the identifier the strategy registers under.
	Name() Algorithm

	// Select searches the given coins for a subset funding the
	// request. It returns ErrInsufficientFunds when no subset can
	// cover the target plus the minimal fee, and ErrNoSolution when a
	// qualifying subset exists in principle but the strategy's search
	// could not produce one.
	Select(coins []Coin, req *Request) (*Result, error)
}

// preparePool runs the fail-fast validation shared by all strategies
// and narrows the coin collection down to the eligible candidate pool:
// coins meeting the confirmation requirement whose effective value is
// positive at the request fee rate. The returned pool is sorted by
// descending value with deterministic tie-breaks.
func preparePool(coins []Coin, req *Request) ([]Coin, feeEstimator, error) {
	var est feeEstimator

	if req == nil {
		return nil, est, ErrInvalidRequest
	}

	if err := req.validate(); err != nil {
		return nil, est, err
	}

	if len(coins) == 0 {
		return nil, est, ErrNoCoins
	}

	if err := validateCoins(coins); err != nil {
		return nil, est, err
	}

	est = newFeeEstimator(req)

	eligible := make([]Coin, 0, len(coins))
	for _, c := range coins {
		if c.Confirmations < req.MinConfs {
			continue
		}

		// Skip inputs that do not raise the total transaction output
		// value at the requested fee rate.
		if est.effectiveValue(c) <= 0 {
			log.Debugf("Skipping negatively yielding coin %v", c)
			continue
		}

		eligible = append(eligible, c)
	}

	if !fundsSufficient(eligible, req, est) {
		return nil, est, ErrInsufficientFunds
	}

	return sortCoinsDesc(eligible), est, nil
}

// fundsSufficient reports whether spending every economically viable
// eligible coin could cover the target plus the fee for the resulting
// transaction. The fee is truncated once over the whole transaction
// vsize, matching what finalize will charge. This is the shared
// insufficient-funds check: when it fails, no search can succeed
// either.
func fundsSufficient(eligible []Coin, req *Request, est feeEstimator) bool {
	spendable := make([]Coin, 0, len(eligible))
	for _, c := range eligible {
		if est.effectiveValue(c) > 0 {
			spendable = append(spendable, c)
		}
	}

	return sumValue(spendable) >= req.Target+est.feeFor(spendable, false)
}
