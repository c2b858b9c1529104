package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/infrastructure/models"
	"usdc-credits.backend/pkg/utils"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = utils.GenerateUUIDv7()
	}
	m := &models.Wallet{
		ID:               wallet.ID,
		UserID:           wallet.UserID,
		ProviderWalletID: wallet.ProviderWalletID,
		Chain:            wallet.Chain,
		Address:          wallet.Address,
		Type:             string(wallet.Type),
		Name:             wallet.Name,
		IsPrimary:        wallet.IsPrimary,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	wallet.CreatedAt = m.CreatedAt
	wallet.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets all wallets for a user, primary first
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error) {
	var walletModels []models.Wallet
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC, created_at DESC").
		Find(&walletModels).Error
	if err != nil {
		return nil, err
	}

	wallets := make([]*entities.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, r.toEntity(&walletModels[i]))
	}
	return wallets, nil
}

// GetCustodialByUserID gets the user's provider-held wallets
func (r *WalletRepository) GetCustodialByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error) {
	var walletModels []models.Wallet
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(entities.WalletTypeCustodial)).
		Order("is_primary DESC, created_at DESC").
		Find(&walletModels).Error
	if err != nil {
		return nil, err
	}

	wallets := make([]*entities.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, r.toEntity(&walletModels[i]))
	}
	return wallets, nil
}

// GetByAddress gets a wallet by chain and address
func (r *WalletRepository) GetByAddress(ctx context.Context, chain, address string) (*entities.Wallet, error) {
	var m models.Wallet
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("chain = ? AND address = ?", chain, address).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SoftDelete soft deletes a wallet
func (r *WalletRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Wallet{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepository) toEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:               m.ID,
		UserID:           m.UserID,
		ProviderWalletID: m.ProviderWalletID,
		Chain:            m.Chain,
		Address:          m.Address,
		Type:             entities.WalletType(m.Type),
		Name:             m.Name,
		IsPrimary:        m.IsPrimary,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
