package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/domain/repositories"
	"usdc-credits.backend/pkg/logger"
)

// ProviderNotification is the payload of a provider transaction webhook.
type ProviderNotification struct {
	NotificationType string `json:"notificationType"`
	Transaction      struct {
		ID     string `json:"id"`
		State  string `json:"state"`
		TxHash string `json:"txHash"`
	} `json:"notification"`
}

// WebhookUsecase ingests provider transaction notifications and settles
// pending credit transactions.
type WebhookUsecase struct {
	txRepo   repositories.CreditTransactionRepository
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	txRepo repositories.CreditTransactionRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *WebhookUsecase {
	return &WebhookUsecase{
		txRepo:   txRepo,
		userRepo: userRepo,
		uow:      uow,
	}
}

// Terminal provider transaction states.
func mapProviderState(state string) (entities.TransactionStatus, bool) {
	switch state {
	case "COMPLETE", "CONFIRMED":
		return entities.TransactionStatusConfirmed, true
	case "FAILED", "CANCELLED", "DENIED":
		return entities.TransactionStatusFailed, true
	default:
		return entities.TransactionStatusPending, false
	}
}

// ProcessProviderNotification settles the credit transaction referenced by a
// provider notification. Confirmation replaces the "pending" hash placeholder
// with the real on-chain hash and awards the purchased credits; unknown
// transaction ids and non-terminal states are ignored.
func (u *WebhookUsecase) ProcessProviderNotification(ctx context.Context, n *ProviderNotification) error {
	status, terminal := mapProviderState(n.Transaction.State)
	if !terminal {
		logger.Debug(ctx, "ignoring non-terminal provider state",
			zap.String("provider_tx_id", n.Transaction.ID),
			zap.String("state", n.Transaction.State))
		return nil
	}

	key := fmt.Sprintf("credit-purchase-%s", n.Transaction.ID)
	record, err := u.txRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "provider notification for unknown transaction",
				zap.String("provider_tx_id", n.Transaction.ID))
			return nil
		}
		return err
	}

	// Replays of an already settled transaction are no-ops.
	if record.Status != entities.TransactionStatusPending {
		return nil
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.txRepo.UpdateStatus(txCtx, record.ID, status, n.Transaction.TxHash); err != nil {
			return err
		}
		if status == entities.TransactionStatusConfirmed {
			if err := u.userRepo.AddCredits(txCtx, record.UserID, record.CreditAmount); err != nil {
				return err
			}
		}
		logger.Info(txCtx, "credit transaction settled",
			zap.String("transaction_id", record.ID.String()),
			zap.String("status", string(status)))
		return nil
	})
}
