package repositories

import (
	"context"

	"github.com/google/uuid"
	"usdc-credits.backend/internal/domain/entities"
)

// WalletRepository defines wallet data operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error)
	GetCustodialByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error)
	GetByAddress(ctx context.Context, chain, address string) (*entities.Wallet, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
