package unit

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

// TestFeeRateConversions checks that the conversion between the fee
// rate units is correct.
func TestFeeRateConversions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		rate        SatPerKVByte
		expectedVB  SatPerVByte
		expectedKVB SatPerKVByte
	}{
		{
			name:        "1 sat/vb",
			rate:        SatPerVByte(1).FeePerKVByte(),
			expectedVB:  1,
			expectedKVB: 1000,
		},
		{
			name:        "sub sat/vb rate",
			rate:        250,
			expectedVB:  0,
			expectedKVB: 250,
		},
		{
			name:        "derived from fee and size",
			rate:        NewSatPerKVByte(500, 250),
			expectedVB:  2,
			expectedKVB: 2000,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expectedKVB, tc.rate)
			require.Equal(t, tc.expectedVB, tc.rate.FeePerVByte())
		})
	}
}

// TestFeeForVSize checks fee calculation including the rounding
// behavior of the round-up variant.
func TestFeeForVSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		rate            SatPerKVByte
		size            VByte
		expectedFee     btcutil.Amount
		expectedCeilFee btcutil.Amount
	}{
		{
			name:            "exact multiple",
			rate:            1000,
			size:            233,
			expectedFee:     233,
			expectedCeilFee: 233,
		},
		{
			name:            "truncated remainder",
			rate:            2500,
			size:            111,
			expectedFee:     277,
			expectedCeilFee: 278,
		},
		{
			name:            "zero rate",
			rate:            0,
			size:            1000,
			expectedFee:     0,
			expectedCeilFee: 0,
		},
		{
			name:            "zero size",
			rate:            5000,
			size:            0,
			expectedFee:     0,
			expectedCeilFee: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(
				t, tc.expectedFee, tc.rate.FeeForVSize(tc.size),
			)
			require.Equal(
				t, tc.expectedCeilFee,
				tc.rate.FeeForVSizeRoundUp(tc.size),
			)
		})
	}
}

// TestFeeRateString checks the human-readable representations.
func TestFeeRateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2 sat/vb", SatPerVByte(2).String())
	require.Equal(t, "250 sat/kvb", SatPerKVByte(250).String())
	require.Equal(t, "58 vb", VByte(58).String())
}
