package entities

import "math/big"

// TokenBalance is an on-chain token balance in smallest units, as read by
// the external wallet path.
type TokenBalance struct {
	TokenID  string   `json:"tokenId"`
	Decimals int      `json:"decimals"`
	Amount   *big.Int `json:"amount"`
}

// Sufficient reports whether the balance covers the required smallest-unit
// amount. Strict integer comparison.
func (b *TokenBalance) Sufficient(required *big.Int) bool {
	if b.Amount == nil || required == nil {
		return false
	}
	return b.Amount.Cmp(required) >= 0
}

// ProviderBalance is one entry of the custodial provider's balance listing.
// The provider reports amounts as decimal strings, not smallest units.
type ProviderBalance struct {
	TokenID  string `json:"tokenId"`
	Symbol   string `json:"symbol"`
	Amount   string `json:"amount"`
	Decimals int    `json:"decimals"`
}
