// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/ordkit/coinselect/unit"
)

// DefaultDustThreshold is the dust threshold applied when a request
// leaves DustThreshold unset. It matches the classic network dust limit
// below which creating an output is not economically worthwhile.
const DefaultDustThreshold btcutil.Amount = 546

// ProtectionPolicy describes which protection classifications must be
// kept out of the candidate pool, and whether the caller may override
// the exclusion.
type ProtectionPolicy struct {
	// Protected lists the classifications that are excluded from
	// selection. An empty list disables protection filtering.
	Protected []Classification

	// AllowOverride, when true, retains protected coins in the
	// candidate pool. Any protected coins that end up selected are
	// flagged in the result so the caller can warn the end user.
	AllowOverride bool
}

// Request bundles all the parameters required to run one selection
// call. The fields listed here are the entire configuration surface of
// the engine; there is no implicit state.
type Request struct {
	// Target is the value the selected coins must cover, in satoshis,
	// on top of the fee. This field is required and must be positive.
	Target btcutil.Amount

	// FeeRate is the fee rate the final spend plan must pay, in
	// satoshis per kilo-virtual-byte. This field is required and must
	// be positive.
	FeeRate unit.SatPerKVByte

	// LongTermFeeRate estimates the fee rate at which unselected value
	// would be spent in the future. It only influences the waste
	// metric. When zero, FeeRate is used.
	LongTermFeeRate unit.SatPerKVByte

	// MinConfs is the minimum number of confirmations a coin must have
	// to be considered eligible.
	MinConfs int32

	// MaxInputs caps the number of inputs a solution may use. Zero
	// means no cap.
	MaxInputs int

	// DustThreshold is the value below which an output is not worth
	// creating. Leftover below this threshold is folded into the fee
	// instead of producing a change output. When zero,
	// DefaultDustThreshold is used.
	DustThreshold btcutil.Amount

	// Algorithm identifies the selection strategy to run. The zero
	// value resolves to AlgoAuto.
	Algorithm Algorithm

	// Protection is the protection policy applied when the strategy is
	// composed with a ProtectedStrategy.
	Protection ProtectionPolicy

	// OutputScriptSize is the size in bytes of the recipient output
	// script, used by the fee model. When zero, a P2TR script size is
	// assumed.
	OutputScriptSize int

	// ChangeScriptSize is the size in bytes of the change output
	// script, used by the fee model. When zero, a P2TR script size is
	// assumed.
	ChangeScriptSize int
}

// validate performs the fail-fast checks shared by all strategies. The
// coin collection itself is validated separately since it is not part
// of the request.
func (r *Request) validate() error {
	if r.Target <= 0 {
		return ErrZeroTarget
	}

	if r.FeeRate <= 0 {
		return ErrZeroFeeRate
	}

	// Reject targets that no relaying node would accept as an output.
	recipient := wire.TxOut{
		Value:    int64(r.Target),
		PkScript: make([]byte, r.outputScriptSize()),
	}
	if txrules.IsDustOutput(&recipient, txrules.DefaultRelayFeePerKb) {
		return ErrDustTarget
	}

	return nil
}

// dust returns the effective dust threshold for this request.
func (r *Request) dust() btcutil.Amount {
	if r.DustThreshold > 0 {
		return r.DustThreshold
	}

	return DefaultDustThreshold
}

// maxInputs returns the effective input cap for a pool of n coins.
func (r *Request) maxInputs(n int) int {
	if r.MaxInputs <= 0 || r.MaxInputs > n {
		return n
	}

	return r.MaxInputs
}

// outputScriptSize returns the recipient script size used by the fee
// model.
func (r *Request) outputScriptSize() int {
	if r.OutputScriptSize > 0 {
		return r.OutputScriptSize
	}

	return txsizes.P2TRPkScriptSize
}

// changeScriptSize returns the change script size used by the fee
// model.
func (r *Request) changeScriptSize() int {
	if r.ChangeScriptSize > 0 {
		return r.ChangeScriptSize
	}

	return txsizes.P2TRPkScriptSize
}

// longTermRate returns the fee rate used for the long-term component of
// the waste metric.
func (r *Request) longTermRate() unit.SatPerKVByte {
	if r.LongTermFeeRate > 0 {
		return r.LongTermFeeRate
	}

	return r.FeeRate
}

// Result is the spend plan produced by a successful selection call.
type Result struct {
	// Selected holds the chosen coins in selection order. The order is
	// deterministic for identical inputs but carries no chain meaning.
	Selected []Coin

	// TotalInput is the summed value of the selected coins.
	TotalInput btcutil.Amount

	// Fee is the fee the spend plan pays. When no change output is
	// created, any sub-dust leftover has been folded into it.
	Fee btcutil.Amount

	// Change is the value of the change output, or zero when HasChange
	// is false.
	Change btcutil.Amount

	// HasChange reports whether the plan includes a change output.
	HasChange bool

	// Waste is the waste score of the plan: the fee paid for the
	// inputs minus their estimated long-term spending cost, plus the
	// change output cost if change is created. Scores are only
	// comparable between runs of the same strategy.
	Waste btcutil.Amount

	// ProtectedSpends lists any selected coins that carry a protected
	// classification. It is only ever populated when the protection
	// policy allows overriding; callers should surface a warning for
	// each entry.
	ProtectedSpends []Coin
}
