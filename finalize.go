// Copyright (c) 2026 The ordkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "fmt"

// finalize converts a winning candidate subset into a Result, applying
// the fee and change policy shared by all strategies: the definitive
// fee is computed from the concrete input and output count, a change
// output is only created when the leftover justifies both the dust
// threshold and the cost of the extra output, and a sub-threshold
// leftover is folded into the fee so value is never silently lost.
func finalize(selected []Coin, req *Request, est feeEstimator) (*Result,
	error) {

	total := sumValue(selected)
	feeNoChange := est.feeFor(selected, false)

	leftover := total - req.Target - feeNoChange
	if leftover < 0 {
		return nil, fmt.Errorf("%w: selected %v cannot cover "+
			"target %v plus fee %v", ErrInsufficientFunds, total,
			req.Target, feeNoChange)
	}

	changeFee := est.feeFor(selected, true) - feeNoChange

	res := &Result{
		Selected:   selected,
		TotalInput: total,
	}

	if leftover >= req.dust()+changeFee {
		res.HasChange = true
		res.Change = leftover - changeFee
		res.Fee = feeNoChange + changeFee
	} else {
		// The leftover is not worth a change output. It grows the
		// fee, never the target.
		res.Fee = feeNoChange + leftover
	}

	res.Waste = est.waste(selected, req.longTermRate(), res.HasChange)

	return res, nil
}
