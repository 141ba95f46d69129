// Package unit provides typed units for fee rates and transaction
// sizes so that satoshi amounts, rates and sizes cannot be mixed up at
// call sites.
package unit

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// SatPerVByte represents a fee rate in sat/vbyte.
type SatPerVByte btcutil.Amount

// FeePerKVByte converts the current fee rate from sat/vb to sat/kvb.
func (s SatPerVByte) FeePerKVByte() SatPerKVByte {
	return SatPerKVByte(s * 1000)
}

// String returns a human-readable string of the fee rate.
func (s SatPerVByte) String() string {
	return fmt.Sprintf("%v sat/vb", int64(s))
}

// SatPerKVByte represents a fee rate in sat/kvb. This is the canonical
// rate unit used throughout the selection engine since it allows
// sub-satoshi-per-vbyte rates to be expressed with integer arithmetic.
type SatPerKVByte btcutil.Amount

// NewSatPerKVByte creates a new fee rate in sat/kvb from a fee paid for
// a given size.
func NewSatPerKVByte(fee btcutil.Amount, kvb VByte) SatPerKVByte {
	if kvb == 0 {
		return 0
	}

	return SatPerKVByte(fee.MulF64(1000 / float64(kvb)))
}

// FeeForVSize calculates the fee resulting from this fee rate and the
// given vsize in vbytes. The resulting fee is rounded down.
func (s SatPerKVByte) FeeForVSize(vbytes VByte) btcutil.Amount {
	return btcutil.Amount(s) * btcutil.Amount(vbytes) / 1000
}

// FeeForVSizeRoundUp calculates the fee resulting from this fee rate
// and the given vsize in vbytes, rounding up to the nearest satoshi.
func (s SatPerKVByte) FeeForVSizeRoundUp(vbytes VByte) btcutil.Amount {
	return (btcutil.Amount(s)*btcutil.Amount(vbytes) + 999) / 1000
}

// FeePerVByte converts the current fee rate from sat/kvb to sat/vb,
// truncating any sub-satoshi remainder.
func (s SatPerKVByte) FeePerVByte() SatPerVByte {
	return SatPerVByte(s / 1000)
}

// String returns a human-readable string of the fee rate.
func (s SatPerKVByte) String() string {
	return fmt.Sprintf("%v sat/kvb", int64(s))
}
