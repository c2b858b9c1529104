package repositories

import (
	"context"

	"github.com/google/uuid"
	"usdc-credits.backend/internal/domain/entities"
)

// CreditTransactionRepository defines credit transaction data operations.
// Rows are insert-then-update only; there is no delete.
type CreditTransactionRepository interface {
	Create(ctx context.Context, tx *entities.CreditTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CreditTransaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.CreditTransaction, int, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entities.CreditTransaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, txHash string) error
	CountByStatus(ctx context.Context) (map[entities.TransactionStatus]int64, error)
}
