package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionStatus represents a credit transaction lifecycle state.
// The row is created as pending; an asynchronous confirmation (provider
// webhook) later moves it to confirmed or failed.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// TransactionDirection represents the ledger direction of a transaction.
type TransactionDirection string

const (
	TransactionDirectionCredit TransactionDirection = "credit"
)

// PendingTxHashPlaceholder is stored as the transaction hash for custodial
// dispatches until the provider reports the on-chain hash.
const PendingTxHashPlaceholder = "pending"

// CreditTransaction records one dispatched credit purchase attempt.
// Rows are created once per dispatch and never deleted; status and txHash
// are updated later by the confirmation flow.
type CreditTransaction struct {
	ID             uuid.UUID            `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID            `json:"userId"`
	WalletID       *uuid.UUID           `json:"walletId,omitempty"`
	Direction      TransactionDirection `json:"direction"`
	AmountUSDC     string               `json:"amountUsdc" gorm:"type:decimal(36,18)"`
	CreditAmount   int64                `json:"creditAmount"`
	Chain          string               `json:"chain"`
	Asset          string               `json:"asset"`
	TxHash         null.String          `json:"txHash,omitempty"`
	Status         TransactionStatus    `json:"status"`
	IdempotencyKey string               `json:"idempotencyKey"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`

	// Joins
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Wallet *Wallet `json:"wallet,omitempty" gorm:"foreignKey:WalletID"`
}
