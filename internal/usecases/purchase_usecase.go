package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/domain/repositories"
	"usdc-credits.backend/pkg/logger"
)

// PurchaseUsecase handles credit purchase business logic across both payment
// paths.
type PurchaseUsecase struct {
	txRepo     repositories.CreditTransactionRepository
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	custodial  PaymentMethod
	external   PaymentMethod
	cfg        config.PaymentConfig
}

// NewPurchaseUsecase creates a new purchase usecase
func NewPurchaseUsecase(
	txRepo repositories.CreditTransactionRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
	custodialMethod PaymentMethod,
	externalMethod PaymentMethod,
	cfg config.PaymentConfig,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		txRepo:     txRepo,
		walletRepo: walletRepo,
		uow:        uow,
		custodial:  custodialMethod,
		external:   externalMethod,
		cfg:        cfg,
	}
}

// GetDestination returns the configured receiving address. Every dispatch
// short-circuits here when the address is not configured.
func (u *PurchaseUsecase) GetDestination() (string, error) {
	if u.cfg.DestinationAddress == "" {
		return "", domainerrors.Configuration("destination address not configured")
	}
	return u.cfg.DestinationAddress, nil
}

// PurchaseCredits buys credits from the user's custodial wallet. The USDC
// amount is derived from the credit count; a client-supplied amount is only
// cross-checked, never trusted.
func (u *PurchaseUsecase) PurchaseCredits(ctx context.Context, userID uuid.UUID, input *entities.PurchaseCreditsInput) (*entities.PurchaseCreditsResponse, error) {
	destination, err := u.GetDestination()
	if err != nil {
		return nil, err
	}

	amount := u.custodial.EstimateRequiredAmount(input.Credits)
	if input.UsdcAmount != "" {
		claimed, err := ParseAmount(input.UsdcAmount)
		if err != nil {
			return nil, err
		}
		if !claimed.Equal(amount) {
			return nil, domainerrors.BadRequest("usdcAmount does not match credit price")
		}
	}

	wallets, err := u.walletRepo.GetCustodialByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, domainerrors.NotFound("no custodial wallet for user")
	}
	wallet := wallets[0]

	if err := u.custodial.CheckSufficiency(ctx, wallet, amount); err != nil {
		return nil, err
	}

	result, err := u.custodial.Dispatch(ctx, DispatchInput{
		Wallet:      wallet,
		Amount:      amount,
		Destination: destination,
	})
	if err != nil {
		return nil, err
	}

	// The key is derived from the provider transaction id, so it only
	// exists after submission. A replay of the same provider transaction
	// is a no-op returning the original record.
	idempotencyKey := fmt.Sprintf("credit-purchase-%s", result.ProviderTransactionID)

	record := &entities.CreditTransaction{
		UserID:         userID,
		WalletID:       &wallet.ID,
		Direction:      entities.TransactionDirectionCredit,
		AmountUSDC:     amount.String(),
		CreditAmount:   input.Credits,
		Chain:          wallet.Chain,
		Asset:          "USDC",
		TxHash:         null.StringFrom(result.TxHash),
		Status:         entities.TransactionStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	if err := u.txRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			existing, getErr := u.txRepo.GetByIdempotencyKey(ctx, idempotencyKey)
			if getErr == nil {
				return &entities.PurchaseCreditsResponse{
					Success:               true,
					TransactionID:         existing.ID,
					ProviderTransactionID: result.ProviderTransactionID,
				}, nil
			}
		}

		// The transfer already happened; losing the dispatch result over a
		// record write would be worse than returning an unrecorded success.
		logger.Error(ctx, "dispatch succeeded but record write failed",
			zap.String("provider_tx_id", result.ProviderTransactionID),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return &entities.PurchaseCreditsResponse{
			Success:               true,
			ProviderTransactionID: result.ProviderTransactionID,
			RecordPending:         true,
		}, nil
	}

	return &entities.PurchaseCreditsResponse{
		Success:               true,
		TransactionID:         record.ID,
		ProviderTransactionID: result.ProviderTransactionID,
	}, nil
}

// RecordExternalPayment persists a transfer a browser wallet already
// dispatched. Unknown wallet addresses are registered as external wallets in
// the same transaction as the record itself.
func (u *PurchaseUsecase) RecordExternalPayment(ctx context.Context, userID uuid.UUID, input *entities.RecordExternalPaymentInput) (*entities.RecordExternalPaymentResponse, error) {
	destination, err := u.GetDestination()
	if err != nil {
		return nil, err
	}
	if input.DestinationAddress != destination {
		return nil, domainerrors.BadRequest("destination address does not match configured destination")
	}

	amount := u.external.EstimateRequiredAmount(input.Credits)
	claimed, err := ParseAmount(input.UsdcAmount)
	if err != nil {
		return nil, err
	}
	if !claimed.Equal(amount) {
		return nil, domainerrors.BadRequest("usdcAmount does not match credit price")
	}

	result, err := u.external.Dispatch(ctx, DispatchInput{
		Amount:       amount,
		Destination:  destination,
		ClientTxHash: input.TxHash,
	})
	if err != nil {
		return nil, err
	}

	idempotencyKey := fmt.Sprintf("external-%s", result.TxHash)

	existing, err := u.txRepo.GetByIdempotencyKey(ctx, idempotencyKey)
	if err == nil {
		return &entities.RecordExternalPaymentResponse{Success: true, TransactionID: existing.ID}, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	record := &entities.CreditTransaction{
		UserID:         userID,
		Direction:      entities.TransactionDirectionCredit,
		AmountUSDC:     amount.String(),
		CreditAmount:   input.Credits,
		Chain:          u.cfg.Chain,
		Asset:          "USDC",
		TxHash:         null.StringFrom(result.TxHash),
		Status:         entities.TransactionStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		wallet, err := u.walletRepo.GetByAddress(txCtx, u.cfg.Chain, input.WalletAddress)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrWalletNotFound) && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
			wallet = &entities.Wallet{
				UserID:  userID,
				Chain:   u.cfg.Chain,
				Address: input.WalletAddress,
				Type:    entities.WalletTypeExternal,
			}
			if err := u.walletRepo.Create(txCtx, wallet); err != nil {
				return err
			}
		}
		record.WalletID = &wallet.ID
		return u.txRepo.Create(txCtx, record)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			if existing, getErr := u.txRepo.GetByIdempotencyKey(ctx, idempotencyKey); getErr == nil {
				return &entities.RecordExternalPaymentResponse{Success: true, TransactionID: existing.ID}, nil
			}
		}
		return nil, err
	}

	return &entities.RecordExternalPaymentResponse{Success: true, TransactionID: record.ID}, nil
}

// GetTransactions lists the user's credit transactions, newest first.
func (u *PurchaseUsecase) GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.CreditTransaction, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return u.txRepo.GetByUserID(ctx, userID, limit, offset)
}
