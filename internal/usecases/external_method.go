package usecases

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/infrastructure/blockchain"
)

// ExternalPaymentMethod covers browser-held wallets. The wallet itself signs
// and broadcasts; this side only reads the on-chain ERC-20 balance and
// accepts the resulting transaction hash. Sufficiency is a strict integer
// comparison in the token's smallest unit.
type ExternalPaymentMethod struct {
	clientFactory *blockchain.ClientFactory
	rpcURL        string
	tokenAddress  string
	decimals      int
	exchangeRate  float64
}

// NewExternalPaymentMethod creates the external payment method
func NewExternalPaymentMethod(clientFactory *blockchain.ClientFactory, chainCfg config.BlockchainConfig, paymentCfg config.PaymentConfig) *ExternalPaymentMethod {
	return &ExternalPaymentMethod{
		clientFactory: clientFactory,
		rpcURL:        chainCfg.EthSepoliaRPC,
		tokenAddress:  chainCfg.USDCTokenAddress,
		decimals:      paymentCfg.USDCDecimals,
		exchangeRate:  paymentCfg.CreditExchangeRate,
	}
}

// EstimateRequiredAmount derives the USDC price from the credit exchange rate
func (m *ExternalPaymentMethod) EstimateRequiredAmount(credits int64) decimal.Decimal {
	return CreditsToUSDC(credits, m.exchangeRate)
}

// CheckSufficiency reads the wallet's on-chain USDC balance and compares it
// against the required amount in smallest units.
func (m *ExternalPaymentMethod) CheckSufficiency(ctx context.Context, wallet *entities.Wallet, amount decimal.Decimal) error {
	if m.tokenAddress == "" {
		return domainerrors.Configuration("USDC token address not configured")
	}

	required, err := ConvertToSmallestUnit(amount, m.decimals)
	if err != nil {
		return err
	}

	client, err := m.clientFactory.GetEVMClient(m.rpcURL)
	if err != nil {
		return domainerrors.ProviderError("failed to connect to chain RPC", err)
	}

	held, err := client.GetTokenBalance(ctx, m.tokenAddress, wallet.Address)
	if err != nil {
		return domainerrors.ProviderError("failed to read on-chain balance", err)
	}

	balance := &entities.TokenBalance{
		TokenID:  m.tokenAddress,
		Decimals: m.decimals,
		Amount:   held,
	}
	if !balance.Sufficient(required) {
		return domainerrors.InsufficientFunds("insufficient USDC balance in wallet")
	}
	return nil
}

// Dispatch accepts the hash the browser wallet reported after broadcasting.
// The transfer is already on its way; nothing is submitted from here.
func (m *ExternalPaymentMethod) Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	if input.ClientTxHash == "" {
		return nil, domainerrors.BadRequest("missing transaction hash from wallet")
	}

	raw, err := hexutil.Decode(input.ClientTxHash)
	if err != nil || len(raw) != common.HashLength {
		return nil, domainerrors.BadRequest("malformed transaction hash")
	}

	return &DispatchResult{TxHash: input.ClientTxHash}, nil
}
