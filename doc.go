// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements UTXO selection for funding a spend of a
// target value at a given fee rate.
//
// The engine is a pure function of its inputs: the caller supplies the
// spendable coins and a Request, and receives a Result describing which
// coins to spend, the fee to pay and the change to create. Fetching
// coins, assembling the final transaction and signing are all the
// caller's concern.
//
// Four interchangeable selection strategies are provided (branch and
// bound, accumulative, blackjack and waste-optimized), dispatched
// through an immutable Registry. Coins carrying attached non-monetary
// value (inscriptions, fungible protocol tokens or other protocol
// assets) can be excluded from selection by composing any strategy with
// a ProtectedStrategy.
package coinselect
