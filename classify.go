// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/btcsuite/btcd/wire"

// Classification tags a coin with the kind of non-monetary value it is
// known to carry. A classified coin should not be spent as a plain fee
// or change input without explicit consent, since doing so destroys or
// transfers the attached asset.
type Classification uint8

const (
	// ClassNone marks a coin that carries no known attached assets and
	// is freely spendable.
	ClassNone Classification = iota

	// ClassInscription marks a coin that carries an inscription.
	// Spending it as a plain input irrevocably transfers the inscribed
	// artifact, so this is treated as the highest-severity class.
	ClassInscription

	// ClassFungibleToken marks a coin that carries a balance of a
	// fungible protocol token.
	ClassFungibleToken

	// ClassProtocolAsset marks a coin that carries some other
	// protocol-attached asset.
	ClassProtocolAsset
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassInscription:
		return "inscription"
	case ClassFungibleToken:
		return "fungible-token"
	case ClassProtocolAsset:
		return "protocol-asset"
	default:
		return "unknown"
	}
}

// Indicators bundles the externally supplied evidence about a single
// output. The engine never infers any of this from script bytes or
// chain state itself; an external indexer supplies it per coin.
type Indicators struct {
	// HasInscription is true when the output is known to carry an
	// inscription.
	HasInscription bool

	// FungibleTokenUnits is the number of fungible protocol token
	// units known to be attached to the output. Zero means none.
	FungibleTokenUnits uint64

	// HasProtocolAsset is true when the output is known to carry some
	// other protocol-attached asset.
	HasProtocolAsset bool
}

// Classify maps supplied evidence to a protection classification. When
// multiple indicators apply, the highest-severity one wins: an
// inscription takes precedence over a fungible token balance, which
// takes precedence over any other protocol asset. Absence of evidence
// yields ClassNone; there is no error condition.
func Classify(ind Indicators) Classification {
	switch {
	case ind.HasInscription:
		return ClassInscription
	case ind.FungibleTokenUnits > 0:
		return ClassFungibleToken
	case ind.HasProtocolAsset:
		return ClassProtocolAsset
	default:
		return ClassNone
	}
}

// IndicatorSource supplies protection indicators per outpoint. It is an
// external collaborator, typically backed by an inscription or token
// indexer. Implementations must be safe for concurrent use.
type IndicatorSource interface {
	// Indicators returns the known evidence for the given outpoint.
	// Unknown outpoints must return the zero Indicators value.
	Indicators(op wire.OutPoint) Indicators
}

// classTable is a call-scoped side table mapping coin outpoints to
// their classification. Keeping classifications out of the Coin struct
// preserves the caller-owned, engine-read-only contract on coins under
// concurrent selection calls.
type classTable map[wire.OutPoint]Classification

// classify returns the classification for the given coin, defaulting
// to ClassNone for coins absent from the table.
func (t classTable) classify(c Coin) Classification {
	return t[c.OutPoint]
}

// classifyAll builds the classification side table for one selection
// call. A nil source classifies every coin as ClassNone.
func classifyAll(coins []Coin, source IndicatorSource) classTable {
	table := make(classTable, len(coins))
	if source == nil {
		return table
	}

	for _, c := range coins {
		class := Classify(source.Indicators(c.OutPoint))
		if class != ClassNone {
			table[c.OutPoint] = class
		}
	}

	return table
}
