package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/infrastructure/custodial"
	"usdc-credits.backend/pkg/logger"
)

// CustodialPaymentMethod dispatches purchases through the wallet provider.
// The provider reports balances as decimal strings, so sufficiency here is a
// decimal comparison rather than the integer comparison of the external path.
type CustodialPaymentMethod struct {
	provider     ProviderClient
	usdcTokenID  string
	decimals     int
	exchangeRate float64
}

// NewCustodialPaymentMethod creates the custodial payment method
func NewCustodialPaymentMethod(provider ProviderClient, cfg config.ProviderConfig, paymentCfg config.PaymentConfig) *CustodialPaymentMethod {
	return &CustodialPaymentMethod{
		provider:     provider,
		usdcTokenID:  cfg.USDCTokenID,
		decimals:     paymentCfg.USDCDecimals,
		exchangeRate: paymentCfg.CreditExchangeRate,
	}
}

// EstimateRequiredAmount derives the USDC price from the credit exchange rate
func (m *CustodialPaymentMethod) EstimateRequiredAmount(credits int64) decimal.Decimal {
	return CreditsToUSDC(credits, m.exchangeRate)
}

// CheckSufficiency verifies the custodial wallet holds enough USDC.
// A wallet whose balance listing has no USDC entry fails with NotFound
// before any transfer is attempted.
func (m *CustodialPaymentMethod) CheckSufficiency(ctx context.Context, wallet *entities.Wallet, amount decimal.Decimal) error {
	balance, err := m.findUSDCBalance(ctx, wallet)
	if err != nil {
		return err
	}

	held, err := decimal.NewFromString(balance.Amount)
	if err != nil {
		return domainerrors.ProviderError("provider returned unparseable balance", err)
	}
	if held.LessThan(amount) {
		return domainerrors.InsufficientFunds("insufficient USDC balance in wallet")
	}
	return nil
}

// Dispatch submits a provider transfer to the destination. Submitted means
// the provider accepted and returned a transaction id; the on-chain hash
// arrives later via webhook.
func (m *CustodialPaymentMethod) Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	if m.usdcTokenID == "" {
		return nil, domainerrors.NotFound("USDC token id not configured for provider")
	}

	// The transfer API takes the amount in the token's smallest units.
	units, err := ConvertToSmallestUnit(input.Amount, m.decimals)
	if err != nil {
		return nil, err
	}

	resp, err := m.provider.CreateTransfer(ctx, custodial.TransferRequest{
		WalletID:           input.Wallet.ProviderWalletID,
		TokenID:            m.usdcTokenID,
		DestinationAddress: input.Destination,
		Amount:             units.String(),
	})
	if err != nil {
		var apiErr *custodial.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode < http.StatusInternalServerError {
			return nil, domainerrors.WalletRejected(apiErr.Message)
		}
		return nil, domainerrors.ProviderError("provider transfer failed", err)
	}

	logger.Info(ctx, "custodial transfer submitted",
		zap.String("provider_tx_id", resp.ID),
		zap.String("state", resp.State))

	return &DispatchResult{
		ProviderTransactionID: resp.ID,
		TxHash:                entities.PendingTxHashPlaceholder,
	}, nil
}

func (m *CustodialPaymentMethod) findUSDCBalance(ctx context.Context, wallet *entities.Wallet) (*entities.ProviderBalance, error) {
	if m.usdcTokenID == "" {
		return nil, domainerrors.NotFound("USDC token id not configured for provider")
	}

	balances, err := m.provider.GetWalletBalances(ctx, wallet.ProviderWalletID)
	if err != nil {
		return nil, domainerrors.ProviderError("failed to read wallet balances", err)
	}

	for i := range balances {
		if balances[i].TokenID == m.usdcTokenID {
			return &balances[i], nil
		}
	}
	return nil, domainerrors.NotFound("USDC token not found in wallet")
}
