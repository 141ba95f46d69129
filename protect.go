// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ProtectedStrategy composes an indicator source with an inner
// selection strategy. Every coin is classified before the search runs,
// and coins whose classification is in the request's protected set are
// removed from the candidate pool, so asset-bearing outputs are never
// spent as plain value. When the policy allows overriding, protected
// coins stay in the pool but any that end up selected are flagged in
// the result.
type ProtectedStrategy struct {
	inner  Strategy
	source IndicatorSource
}

// A compile time check to ensure ProtectedStrategy implements the
// Strategy interface.
var _ Strategy = (*ProtectedStrategy)(nil)

// NewProtectedStrategy wraps the given strategy with protection
// filtering backed by the given indicator source.
func NewProtectedStrategy(inner Strategy,
	source IndicatorSource) *ProtectedStrategy {

	return &ProtectedStrategy{
		inner:  inner,
		source: source,
	}
}

// Name returns the inner strategy's identifier; protection is a policy
// layer, not a distinct algorithm.
func (p *ProtectedStrategy) Name() Algorithm {
	return p.inner.Name()
}

// Select classifies the coins, applies the protection policy and runs
// the inner strategy on what remains.
func (p *ProtectedStrategy) Select(coins []Coin, req *Request) (*Result,
	error) {

	if req == nil {
		return nil, ErrInvalidRequest
	}

	// With no protected classes configured there is nothing to
	// filter.
	if len(req.Protection.Protected) == 0 {
		return p.inner.Select(coins, req)
	}

	table := classifyAll(coins, p.source)
	protected := fn.NewSet(req.Protection.Protected...)

	// Under an override the protected coins stay eligible, but any
	// that get selected are flagged so the caller can warn the user.
	if req.Protection.AllowOverride {
		res, err := p.inner.Select(coins, req)
		if err != nil {
			return nil, err
		}

		for _, c := range res.Selected {
			if protected.Contains(table.classify(c)) {
				res.ProtectedSpends = append(
					res.ProtectedSpends, c,
				)
			}
		}

		if len(res.ProtectedSpends) > 0 {
			log.Warnf("Selection spends %d protected coins "+
				"under explicit override",
				len(res.ProtectedSpends))
		}

		return res, nil
	}

	pool := make([]Coin, 0, len(coins))
	for _, c := range coins {
		if protected.Contains(table.classify(c)) {
			log.Debugf("Excluding protected coin %v (%v)", c,
				table.classify(c))

			continue
		}

		pool = append(pool, c)
	}

	// When filtering empties a non-empty collection, distinguish "all
	// your funds are asset-bearing" from "you have no money": the
	// former deserves an override prompt rather than a generic
	// shortfall.
	if len(pool) == 0 && len(coins) > 0 {
		if err := req.validate(); err != nil {
			return nil, err
		}

		eligible := make([]Coin, 0, len(coins))
		for _, c := range coins {
			if c.Confirmations >= req.MinConfs {
				eligible = append(eligible, c)
			}
		}

		if fundsSufficient(eligible, req, newFeeEstimator(req)) {
			return nil, ErrAllFundsProtected
		}

		return nil, ErrInsufficientFunds
	}

	return p.inner.Select(pool, req)
}
