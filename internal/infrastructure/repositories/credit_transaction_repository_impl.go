package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/infrastructure/models"
	"usdc-credits.backend/pkg/utils"
)

// CreditTransactionRepository implements credit transaction data operations
type CreditTransactionRepository struct {
	db *gorm.DB
}

// NewCreditTransactionRepository creates a new credit transaction repository
func NewCreditTransactionRepository(db *gorm.DB) *CreditTransactionRepository {
	return &CreditTransactionRepository{db: db}
}

// Create inserts a new credit transaction row
func (r *CreditTransactionRepository) Create(ctx context.Context, tx *entities.CreditTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = utils.GenerateUUIDv7()
	}
	m := &models.CreditTransaction{
		ID:             tx.ID,
		UserID:         tx.UserID,
		WalletID:       tx.WalletID,
		Direction:      string(tx.Direction),
		AmountUSDC:     tx.AmountUSDC,
		CreditAmount:   tx.CreditAmount,
		Chain:          tx.Chain,
		Asset:          tx.Asset,
		TxHash:         tx.TxHash.Ptr(),
		Status:         string(tx.Status),
		IdempotencyKey: tx.IdempotencyKey,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a credit transaction by ID
func (r *CreditTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CreditTransaction, error) {
	var m models.CreditTransaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID lists a user's credit transactions newest first, with total count
func (r *CreditTransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.CreditTransaction, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.CreditTransaction{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.CreditTransaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txModels).Error
	if err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.CreditTransaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, r.toEntity(&txModels[i]))
	}
	return txs, int(total), nil
}

// GetByIdempotencyKey gets a credit transaction by its idempotency key
func (r *CreditTransactionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entities.CreditTransaction, error) {
	var m models.CreditTransaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("idempotency_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus moves a pending row to its terminal status. A non-empty
// txHash replaces the stored hash, including the "pending" placeholder.
func (r *CreditTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, txHash string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.CreditTransaction{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus returns the number of credit transactions per status
func (r *CreditTransactionRepository) CountByStatus(ctx context.Context) (map[entities.TransactionStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.CreditTransaction{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.TransactionStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.TransactionStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *CreditTransactionRepository) toEntity(m *models.CreditTransaction) *entities.CreditTransaction {
	return &entities.CreditTransaction{
		ID:             m.ID,
		UserID:         m.UserID,
		WalletID:       m.WalletID,
		Direction:      entities.TransactionDirection(m.Direction),
		AmountUSDC:     m.AmountUSDC,
		CreditAmount:   m.CreditAmount,
		Chain:          m.Chain,
		Asset:          m.Asset,
		TxHash:         null.StringFromPtr(m.TxHash),
		Status:         entities.TransactionStatus(m.Status),
		IdempotencyKey: m.IdempotencyKey,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
