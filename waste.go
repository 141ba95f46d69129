// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "errors"

// WasteOptimizedStrategy generates several candidate subsets and picks
// the one with the lowest waste score: the fee paid for the inputs now,
// minus the estimated cost of spending the same inputs later at the
// long-term fee rate, plus the change output cost if change is created.
// A high current rate thus favors few inputs, while a high long-term
// rate favors consolidating small coins now.
type WasteOptimizedStrategy struct{}

// A compile time check to ensure WasteOptimizedStrategy implements the
// Strategy interface.
var _ Strategy = (*WasteOptimizedStrategy)(nil)

// Name returns the identifier the strategy registers under.
func (*WasteOptimizedStrategy) Name() Algorithm {
	return AlgoWasteOptimized
}

// Select generates candidates and returns the lowest-waste one.
func (s *WasteOptimizedStrategy) Select(coins []Coin, req *Request) (*Result,
	error) {

	pool, est, err := preparePool(coins, req)
	if err != nil {
		return nil, err
	}

	candidates := generateCandidates(pool, req, est)
	if len(candidates) == 0 {
		return nil, ErrNoSolution
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if wasteBetter(c, best) {
			best = c
		}
	}

	log.Debugf("Waste-optimized picked %d inputs with waste %v from "+
		"%d candidates", len(best.Selected), best.Waste,
		len(candidates))

	return best, nil
}

// generateCandidates produces finalized candidate results: a greedy
// accumulation over descending values (few large inputs), one over
// ascending values (consolidates fragments) and, when one exists, the
// branch and bound changeless solution.
func generateCandidates(pool []Coin, req *Request,
	est feeEstimator) []*Result {

	candidates := make([]*Result, 0, 3)

	appendCandidate := func(ordered []Coin) {
		selected, err := accumulate(ordered, req, est)
		if err != nil {
			return
		}

		res, err := finalize(selected, req, est)
		if err != nil {
			return
		}

		candidates = append(candidates, res)
	}

	appendCandidate(pool)
	appendCandidate(sortCoinsAsc(pool))

	// A changeless subset, when the search finds one, avoids the
	// change output cost entirely.
	selected, err := searchChangeless(pool, req, est)
	if err == nil {
		res, ferr := finalize(selected, req, est)
		if ferr == nil {
			candidates = append(candidates, res)
		}
	} else if !errors.Is(err, ErrNoSolution) {
		log.Debugf("Changeless candidate generation failed: %v", err)
	}

	return candidates
}

// wasteBetter reports whether candidate a beats candidate b: lower
// waste wins, ties broken by fewer inputs, then by lower total selected
// value.
func wasteBetter(a, b *Result) bool {
	if a.Waste != b.Waste {
		return a.Waste < b.Waste
	}

	if len(a.Selected) != len(b.Selected) {
		return len(a.Selected) < len(b.Selected)
	}

	return a.TotalInput < b.TotalInput
}
