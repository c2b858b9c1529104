package repositories

import (
	"context"

	"github.com/google/uuid"
	"usdc-credits.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	AddCredits(ctx context.Context, id uuid.UUID, credits int64) error
}
