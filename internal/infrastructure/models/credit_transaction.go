package models

import (
	"time"

	"github.com/google/uuid"
)

type CreditTransaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	WalletID       *uuid.UUID `gorm:"type:uuid;index"`
	Direction      string     `gorm:"type:varchar(10);not null;default:'credit'"`
	AmountUSDC     string     `gorm:"column:amount_usdc;type:decimal(36,18);not null"`
	CreditAmount   int64      `gorm:"not null"`
	Chain          string     `gorm:"type:varchar(50);not null"`
	Asset          string     `gorm:"type:varchar(20);not null;default:'USDC'"`
	TxHash         *string    `gorm:"type:varchar(255)"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	IdempotencyKey string     `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Associations
	User   User    `gorm:"foreignKey:UserID"`
	Wallet *Wallet `gorm:"foreignKey:WalletID"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
