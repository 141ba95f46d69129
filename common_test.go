// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/ordkit/coinselect/unit"
)

// testFeeRate is 1 sat/vb, a rate at which every vbyte maps to exactly
// one satoshi so fee arithmetic in tests stays exact.
var testFeeRate = unit.SatPerVByte(1).FeePerKVByte()

// p2wpkhScript returns a canonical P2WPKH output script with a witness
// program derived from the seed.
func p2wpkhScript(seed byte) []byte {
	script := make([]byte, 22)
	script[0] = txscript.OP_0
	script[1] = txscript.OP_DATA_20
	for i := 2; i < len(script); i++ {
		script[i] = seed
	}

	return script
}

// p2trScript returns a canonical P2TR output script with an output key
// derived from the seed.
func p2trScript(seed byte) []byte {
	script := make([]byte, 34)
	script[0] = txscript.OP_1
	script[1] = txscript.OP_DATA_32
	for i := 2; i < len(script); i++ {
		script[i] = seed
	}

	return script
}

// p2pkhScript returns a canonical P2PKH output script.
func p2pkhScript(seed byte) []byte {
	script := make([]byte, 25)
	script[0] = txscript.OP_DUP
	script[1] = txscript.OP_HASH160
	script[2] = txscript.OP_DATA_20
	for i := 3; i < 23; i++ {
		script[i] = seed
	}
	script[23] = txscript.OP_EQUALVERIFY
	script[24] = txscript.OP_CHECKSIG

	return script
}

// makeCoin builds a confirmed P2WPKH test coin with an outpoint derived
// from the seed.
func makeCoin(value btcutil.Amount, seed byte) Coin {
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = seed
	}

	return Coin{
		TxOut: wire.TxOut{
			Value:    int64(value),
			PkScript: p2wpkhScript(seed),
		},
		OutPoint: wire.OutPoint{
			Hash:  hash,
			Index: uint32(seed),
		},
		Confirmations: 6,
	}
}

// makeCoins builds one test coin per value, seeding outpoints by slice
// position.
func makeCoins(values ...btcutil.Amount) []Coin {
	coins := make([]Coin, 0, len(values))
	for i, v := range values {
		coins = append(coins, makeCoin(v, byte(i+1)))
	}

	return coins
}

// testRequest returns a minimal valid request for the given target at
// the standard test fee rate.
func testRequest(target btcutil.Amount) *Request {
	return &Request{
		Target:  target,
		FeeRate: testFeeRate,
	}
}

// staticIndicators is an IndicatorSource backed by a fixed map, used to
// stand in for an external indexer.
type staticIndicators map[wire.OutPoint]Indicators

func (s staticIndicators) Indicators(op wire.OutPoint) Indicators {
	return s[op]
}

// inscribed marks the given coins as inscription-bearing in a new
// indicator source.
func inscribed(coins ...Coin) staticIndicators {
	src := make(staticIndicators, len(coins))
	for _, c := range coins {
		src[c.OutPoint] = Indicators{HasInscription: true}
	}

	return src
}
