package usecases

import (
	"math/big"

	"github.com/shopspring/decimal"
	domainerrors "usdc-credits.backend/internal/domain/errors"
)

var hundred = decimal.NewFromInt(100)

// ConvertToSmallestUnit converts a decimal token amount into the token's
// smallest unit. The conversion goes through whole cents so currency-style
// inputs stay exact: cents = amount * 100, result = cents * 10^(decimals-2).
// Tokens with fewer than 2 decimals cannot represent cents and are rejected.
func ConvertToSmallestUnit(amount decimal.Decimal, decimals int) (*big.Int, error) {
	if decimals < 2 {
		return nil, domainerrors.BadRequest("token decimals below 2 not supported")
	}
	if amount.IsNegative() {
		return nil, domainerrors.BadRequest("amount must not be negative")
	}

	cents := amount.Mul(hundred).Round(0)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals-2)), nil)
	return new(big.Int).Mul(cents.BigInt(), scale), nil
}

// ParseAmount parses a client-supplied decimal amount string.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerrors.BadRequest("invalid decimal amount")
	}
	return d, nil
}

// CreditsToUSDC derives the USDC price of a credit purchase from the
// configured exchange rate (USDC per credit).
func CreditsToUSDC(credits int64, rate float64) decimal.Decimal {
	return decimal.NewFromInt(credits).Mul(decimal.NewFromFloat(rate))
}

// FormatFromSmallestUnit renders a smallest-unit amount as a decimal string,
// for responses and logs.
func FormatFromSmallestUnit(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
