package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wallet struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderWalletID string    `gorm:"type:varchar(255)"`
	Chain            string    `gorm:"type:varchar(50);not null"`
	Address          string    `gorm:"type:varchar(255);not null"`
	Type             string    `gorm:"type:varchar(20);not null"`
	Name             string    `gorm:"type:varchar(100)"`
	IsPrimary        bool      `gorm:"default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Wallet) TableName() string {
	return "wallets"
}
