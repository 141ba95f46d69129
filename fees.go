// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/ordkit/coinselect/unit"
)

// txOverheadVBytes is the virtual size of the non-input, non-output
// part of a segwit transaction: version (4), input and output counts
// (2), locktime (4), plus the witness marker and flag which weigh in at
// half a vbyte, rounded up.
const txOverheadVBytes unit.VByte = 11

// feeEstimator computes fees for concrete input/output combinations at
// the request's fee rate. Virtual-byte weights per script type come
// from the txsizes tables rather than being derived dynamically.
type feeEstimator struct {
	rate             unit.SatPerKVByte
	outputScriptSize int
	changeScriptSize int
}

// newFeeEstimator builds the estimator for one selection call.
func newFeeEstimator(req *Request) feeEstimator {
	return feeEstimator{
		rate:             req.FeeRate,
		outputScriptSize: req.outputScriptSize(),
		changeScriptSize: req.changeScriptSize(),
	}
}

// outputVSize returns the virtual size of an output with the given
// script size: the 8-byte value, the script length varint and the
// script itself.
func outputVSize(scriptSize int) unit.VByte {
	return unit.VByte(
		8 + wire.VarIntSerializeSize(uint64(scriptSize)) + scriptSize,
	)
}

// inputVSize returns the minimal virtual size of an input spending the
// given script, including its witness weight.
func inputVSize(pkScript []byte) unit.VByte {
	return unit.VByte(txsizes.GetMinInputVirtualSize(pkScript))
}

// baseVSize returns the virtual size of the transaction skeleton: the
// overhead plus the recipient output, and optionally a change output.
func (f feeEstimator) baseVSize(withChange bool) unit.VByte {
	vsize := txOverheadVBytes + outputVSize(f.outputScriptSize)
	if withChange {
		vsize += outputVSize(f.changeScriptSize)
	}

	return vsize
}

// fixedFee returns the fee attributable to the transaction skeleton,
// before any inputs are added.
func (f feeEstimator) fixedFee(withChange bool) btcutil.Amount {
	return f.rate.FeeForVSize(f.baseVSize(withChange))
}

// feeFor returns the fee for a transaction spending the given coins to
// one recipient output, optionally with a change output.
func (f feeEstimator) feeFor(coins []Coin, withChange bool) btcutil.Amount {
	vsize := f.baseVSize(withChange)
	for _, c := range coins {
		vsize += inputVSize(c.PkScript)
	}

	return f.rate.FeeForVSize(vsize)
}

// inputFeeAt returns the fee attributable to spending the given coins
// at an arbitrary rate. This is used by the waste metric to price the
// same inputs at the current and the long-term rate.
func (f feeEstimator) inputFeeAt(rate unit.SatPerKVByte,
	coins []Coin) btcutil.Amount {

	var vsize unit.VByte
	for _, c := range coins {
		vsize += inputVSize(c.PkScript)
	}

	return rate.FeeForVSize(vsize)
}

// effectiveValue returns the coin's value net of the fee its input
// contributes at the request rate. Coins with non-positive effective
// value cost more to spend than they are worth.
func (f feeEstimator) effectiveValue(c Coin) btcutil.Amount {
	return c.Amount() - f.rate.FeeForVSize(inputVSize(c.PkScript))
}

// changeFee returns the fee cost of adding a change output.
func (f feeEstimator) changeFee() btcutil.Amount {
	return f.rate.FeeForVSize(outputVSize(f.changeScriptSize))
}

// waste scores a finalized subset: the fee paid for the inputs now,
// minus what spending the same inputs would cost at the long-term rate,
// plus the cost of the change output when one is created. Lower is
// better; a negative score means spending now is cheaper than later.
func (f feeEstimator) waste(selected []Coin, longTerm unit.SatPerKVByte,
	hasChange bool) btcutil.Amount {

	w := f.inputFeeAt(f.rate, selected) -
		f.inputFeeAt(longTerm, selected)
	if hasChange {
		w += f.changeFee()
	}

	return w
}
