package usecases

import (
	"context"

	"github.com/shopspring/decimal"
	"usdc-credits.backend/internal/domain/entities"
	"usdc-credits.backend/internal/infrastructure/custodial"
)

// DispatchInput carries everything a payment method needs to move funds.
type DispatchInput struct {
	Wallet      *entities.Wallet
	Amount      decimal.Decimal // whole-token USDC
	Destination string
	// ClientTxHash is the hash a browser wallet already produced.
	// Only the external method reads it.
	ClientTxHash string
}

// DispatchResult identifies a dispatched transfer. Custodial dispatches have
// a provider transaction id and a placeholder hash until the webhook arrives;
// external dispatches carry the wallet-reported hash from the start.
type DispatchResult struct {
	ProviderTransactionID string
	TxHash                string
}

// PaymentMethod is one way of paying USDC to the platform destination.
// Implementations share the same three-step contract so the purchase flow
// does not branch on wallet type.
type PaymentMethod interface {
	// EstimateRequiredAmount derives the USDC price of a credit purchase.
	EstimateRequiredAmount(credits int64) decimal.Decimal
	// CheckSufficiency verifies the wallet can cover the amount.
	CheckSufficiency(ctx context.Context, wallet *entities.Wallet, amount decimal.Decimal) error
	// Dispatch moves the funds to the destination.
	Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error)
}

// ProviderClient is the slice of the custodial provider API the payment flow
// uses.
type ProviderClient interface {
	ListWallets(ctx context.Context, refID string) ([]custodial.ProviderWallet, error)
	GetWalletBalances(ctx context.Context, walletID string) ([]entities.ProviderBalance, error)
	CreateTransfer(ctx context.Context, req custodial.TransferRequest) (*custodial.TransferResponse, error)
}
