package usecases

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	domainerrors "usdc-credits.backend/internal/domain/errors"
)

func TestConvertToSmallestUnit_USDC(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		decimals int
		want     string
	}{
		{"ten usdc", "10.00", 6, "10000000"},
		{"fractional", "25.50", 6, "25500000"},
		{"hundred credits worth", "100", 6, "100000000"},
		{"single cent", "0.01", 6, "10000"},
		{"zero", "0", 6, "0"},
		{"two decimal token", "10.00", 2, "1000"},
		{"eighteen decimal token", "1.5", 18, "1500000000000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)

			got, err := ConvertToSmallestUnit(amount, tc.decimals)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestConvertToSmallestUnit_SubCentRounding(t *testing.T) {
	amount, err := decimal.NewFromString("0.005")
	require.NoError(t, err)

	got, err := ConvertToSmallestUnit(amount, 6)
	require.NoError(t, err)
	// 0.5 cents rounds to 1 cent
	require.Equal(t, "10000", got.String())
}

func TestConvertToSmallestUnit_RejectsLowDecimals(t *testing.T) {
	for _, decimals := range []int{1, 0, -1} {
		_, err := ConvertToSmallestUnit(decimal.NewFromInt(10), decimals)
		require.Error(t, err)

		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 400, appErr.Status)
	}
}

func TestConvertToSmallestUnit_RejectsNegative(t *testing.T) {
	_, err := ConvertToSmallestUnit(decimal.NewFromInt(-1), 6)
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("25.50")
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.RequireFromString("25.5")))

	_, err = ParseAmount("not-a-number")
	require.Error(t, err)
}

func TestCreditsToUSDC(t *testing.T) {
	// 1 credit = 1 USDC
	require.True(t, CreditsToUSDC(100, 1.0).Equal(decimal.NewFromInt(100)))
	// discounted rate
	require.True(t, CreditsToUSDC(10, 0.5).Equal(decimal.NewFromInt(5)))
}

func TestFormatFromSmallestUnit(t *testing.T) {
	require.Equal(t, "10", FormatFromSmallestUnit(big.NewInt(10000000), 6))
	require.Equal(t, "25.5", FormatFromSmallestUnit(big.NewInt(25500000), 6))
	require.Equal(t, "0", FormatFromSmallestUnit(nil, 6))
}
