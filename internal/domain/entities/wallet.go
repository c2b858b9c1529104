package entities

import (
	"time"

	"github.com/google/uuid"
)

// WalletType discriminates the two payment paths.
type WalletType string

const (
	// WalletTypeExternal is a browser-injected wallet the user controls
	// directly. The backend only ever sees its address and chain.
	WalletTypeExternal WalletType = "EXTERNAL"
	// WalletTypeCustodial is a provider-held wallet controlled via the
	// provider API using its ProviderWalletID.
	WalletTypeCustodial WalletType = "CUSTODIAL"
)

// Wallet represents a user's wallet. External wallets carry ChainID and
// Address; custodial wallets additionally carry the provider wallet id.
type Wallet struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID  `json:"userId"`
	ProviderWalletID string     `json:"walletId,omitempty"`
	Chain            string     `json:"chain"`
	Address          string     `json:"address"`
	Type             WalletType `json:"type"`
	Name             string     `json:"name,omitempty"`
	IsPrimary        bool       `json:"isPrimary" gorm:"default:false"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"-"`
}

// IsCustodial reports whether the wallet is dispatched through the provider.
func (w *Wallet) IsCustodial() bool {
	return w.Type == WalletTypeCustodial
}

// ConnectWalletInput represents input for connecting an external wallet
type ConnectWalletInput struct {
	Chain   string `json:"chain" binding:"required"`
	Address string `json:"address" binding:"required"`
	Name    string `json:"name"`
}
