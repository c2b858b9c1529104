package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/domain/repositories"
	"usdc-credits.backend/internal/infrastructure/blockchain"
)

// WalletUsecase handles wallet business logic
type WalletUsecase struct {
	walletRepo    repositories.WalletRepository
	provider      ProviderClient
	clientFactory *blockchain.ClientFactory
	providerCfg   config.ProviderConfig
	chainCfg      config.BlockchainConfig
	paymentCfg    config.PaymentConfig
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	provider ProviderClient,
	clientFactory *blockchain.ClientFactory,
	providerCfg config.ProviderConfig,
	chainCfg config.BlockchainConfig,
	paymentCfg config.PaymentConfig,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo:    walletRepo,
		provider:      provider,
		clientFactory: clientFactory,
		providerCfg:   providerCfg,
		chainCfg:      chainCfg,
		paymentCfg:    paymentCfg,
	}
}

// ListWallets returns the user's wallets. When no custodial wallet is known
// locally, the provider listing is consulted with the user id as reference
// and any provider-held wallets are registered first.
func (u *WalletUsecase) ListWallets(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error) {
	custodialWallets, err := u.walletRepo.GetCustodialByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(custodialWallets) == 0 {
		if err := u.syncProviderWallets(ctx, userID); err != nil {
			return nil, err
		}
	}

	return u.walletRepo.GetByUserID(ctx, userID)
}

// ConnectWallet registers an external wallet for a user
func (u *WalletUsecase) ConnectWallet(ctx context.Context, userID uuid.UUID, input *entities.ConnectWalletInput) (*entities.Wallet, error) {
	existing, err := u.walletRepo.GetByAddress(ctx, input.Chain, input.Address)
	if err != nil && !errors.Is(err, domainerrors.ErrWalletNotFound) && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			return existing, nil
		}
		return nil, domainerrors.Conflict("wallet already registered to another user")
	}

	others, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet := &entities.Wallet{
		UserID:    userID,
		Chain:     input.Chain,
		Address:   input.Address,
		Type:      entities.WalletTypeExternal,
		Name:      input.Name,
		IsPrimary: len(others) == 0,
	}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// GetWalletBalance returns the wallet's token balances. Custodial wallets
// are read through the provider API; external wallets are read on-chain.
func (u *WalletUsecase) GetWalletBalance(ctx context.Context, userID, walletID uuid.UUID) ([]entities.ProviderBalance, error) {
	wallet, err := u.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrWalletNotFound) || errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.WalletNotFound()
		}
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, domainerrors.WalletNotFound()
	}

	if wallet.IsCustodial() {
		balances, err := u.provider.GetWalletBalances(ctx, wallet.ProviderWalletID)
		if err != nil {
			return nil, domainerrors.ProviderError("failed to read wallet balances", err)
		}
		return balances, nil
	}

	if u.chainCfg.USDCTokenAddress == "" {
		return nil, domainerrors.Configuration("USDC token address not configured")
	}

	client, err := u.clientFactory.GetEVMClient(u.chainCfg.EthSepoliaRPC)
	if err != nil {
		return nil, domainerrors.ProviderError("failed to connect to chain RPC", err)
	}

	held, err := client.GetTokenBalance(ctx, u.chainCfg.USDCTokenAddress, wallet.Address)
	if err != nil {
		return nil, domainerrors.ProviderError("failed to read on-chain balance", err)
	}

	return []entities.ProviderBalance{{
		TokenID:  u.chainCfg.USDCTokenAddress,
		Symbol:   "USDC",
		Amount:   FormatFromSmallestUnit(held, u.paymentCfg.USDCDecimals),
		Decimals: u.paymentCfg.USDCDecimals,
	}}, nil
}

func (u *WalletUsecase) syncProviderWallets(ctx context.Context, userID uuid.UUID) error {
	providerWallets, err := u.provider.ListWallets(ctx, userID.String())
	if err != nil {
		return domainerrors.ProviderError("failed to list provider wallets", err)
	}

	for i, pw := range providerWallets {
		wallet := &entities.Wallet{
			UserID:           userID,
			ProviderWalletID: pw.ID,
			Chain:            pw.Blockchain,
			Address:          pw.Address,
			Type:             entities.WalletTypeCustodial,
			IsPrimary:        i == 0,
		}
		if err := u.walletRepo.Create(ctx, wallet); err != nil {
			return err
		}
	}
	return nil
}
