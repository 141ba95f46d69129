// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"errors"
	"fmt"
)

// Algorithm identifies a selection strategy. The set of identifiers is
// closed: adding a strategy means adding a constant and an
// implementation, never modifying callers.
type Algorithm string

const (
	// AlgoAuto resolves to the fallback chain branch and bound, then
	// waste-optimized, then accumulative, returning the first
	// non-ErrNoSolution result.
	AlgoAuto Algorithm = "auto"

	// AlgoBranchAndBound is the changeless branch and bound search.
	AlgoBranchAndBound Algorithm = "branchandbound"

	// AlgoAccumulative is the greedy largest-first accumulation.
	AlgoAccumulative Algorithm = "accumulative"

	// AlgoBlackjack is the exact-target search.
	AlgoBlackjack Algorithm = "blackjack"

	// AlgoWasteOptimized is the waste-minimizing candidate search.
	AlgoWasteOptimized Algorithm = "waste"
)

// Registry maps algorithm identifiers to strategy instances and drives
// the auto fallback chain. A Registry is immutable once constructed and
// its strategies are stateless, so a single instance may serve
// concurrent selection calls without locking. Callers pass the registry
// explicitly; there is no package-level instance.
type Registry struct {
	strategies map[Algorithm]Strategy
	fallback   []Algorithm
}

// NewRegistry constructs a registry holding the four built-in
// strategies with the default auto fallback chain.
func NewRegistry() *Registry {
	return newRegistry(nil)
}

// NewProtectedRegistry constructs a registry whose strategies are each
// wrapped with protection filtering backed by the given indicator
// source.
func NewProtectedRegistry(source IndicatorSource) *Registry {
	return newRegistry(source)
}

func newRegistry(source IndicatorSource) *Registry {
	strategies := map[Algorithm]Strategy{
		AlgoBranchAndBound: &BranchAndBoundStrategy{},
		AlgoAccumulative:   &AccumulativeStrategy{},
		AlgoBlackjack:      &BlackjackStrategy{},
		AlgoWasteOptimized: &WasteOptimizedStrategy{},
	}

	if source != nil {
		for name, s := range strategies {
			strategies[name] = NewProtectedStrategy(s, source)
		}
	}

	return &Registry{
		strategies: strategies,
		fallback: []Algorithm{
			AlgoBranchAndBound,
			AlgoWasteOptimized,
			AlgoAccumulative,
		},
	}
}

// Strategy resolves an algorithm identifier to its registered strategy
// instance. AlgoAuto does not resolve to a single strategy; use Select
// for the fallback behavior.
func (r *Registry) Strategy(algo Algorithm) (Strategy, error) {
	s, ok := r.strategies[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	return s, nil
}

// Select resolves the request's algorithm and runs it. A request for a
// specific algorithm runs exactly that strategy with no fallback: the
// engine never silently substitutes a different solution for a
// requested exact algorithm. AlgoAuto walks the fallback chain,
// skipping strategies that report ErrNoSolution; every other error
// short-circuits the chain since no strategy can rescue it.
func (r *Registry) Select(coins []Coin, req *Request) (*Result, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	algo := req.Algorithm
	if algo == "" {
		algo = AlgoAuto
	}

	if algo != AlgoAuto {
		s, err := r.Strategy(algo)
		if err != nil {
			return nil, err
		}

		return s.Select(coins, req)
	}

	for _, name := range r.fallback {
		res, err := r.strategies[name].Select(coins, req)
		switch {
		case err == nil:
			return res, nil

		case errors.Is(err, ErrNoSolution):
			log.Debugf("Strategy %v found no solution, trying "+
				"next in chain", name)

		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: fallback chain exhausted", ErrNoSolution)
}
