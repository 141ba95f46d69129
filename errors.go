// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when a selection request is
	// malformed. It is never retried internally; the more specific
	// sentinels below wrap it so callers can match either the broad
	// kind or the exact cause with errors.Is.
	ErrInvalidRequest = errors.New("invalid selection request")

	// ErrZeroTarget is returned when the request target is zero or
	// negative.
	ErrZeroTarget = fmt.Errorf("%w: target must be positive",
		ErrInvalidRequest)

	// ErrZeroFeeRate is returned when the request fee rate is zero or
	// negative.
	ErrZeroFeeRate = fmt.Errorf("%w: fee rate must be positive",
		ErrInvalidRequest)

	// ErrDustTarget is returned when the request target is below the
	// network dust limit for the recipient script.
	ErrDustTarget = fmt.Errorf("%w: target is dust", ErrInvalidRequest)

	// ErrNoCoins is returned when the coin collection is empty before
	// any filtering is applied.
	ErrNoCoins = fmt.Errorf("%w: no coins to select from",
		ErrInvalidRequest)

	// ErrDuplicateCoin is returned when the same outpoint appears more
	// than once in the coin collection.
	ErrDuplicateCoin = fmt.Errorf("%w: duplicated coin",
		ErrInvalidRequest)

	// ErrInsufficientFunds is returned when the eligible coins cannot
	// cover the target plus the minimal fee. The auto fallback chain
	// never retries this error since no strategy can rescue it.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAllFundsProtected is a distinct case of ErrInsufficientFunds
	// returned when the unfiltered coins would have sufficed but the
	// protection policy excluded them all. It wraps
	// ErrInsufficientFunds so existing errors.Is checks still report a
	// shortfall, while callers can prompt for an override instead of
	// reporting a generic one.
	ErrAllFundsProtected = fmt.Errorf(
		"%w: all funds carry protected assets", ErrInsufficientFunds,
	)

	// ErrNoSolution is returned when a strategy exhausted its search
	// space or iteration budget without a qualifying subset. Under the
	// auto algorithm this is recoverable by falling back to the next
	// strategy in the chain.
	ErrNoSolution = errors.New("no solution found")

	// ErrUnknownAlgorithm is returned when an algorithm identifier does
	// not resolve to a registered strategy.
	ErrUnknownAlgorithm = errors.New("unknown selection algorithm")
)
