package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"usdc-credits.backend/internal/domain/entities"
	"usdc-credits.backend/internal/infrastructure/custodial"
	"usdc-credits.backend/internal/usecases"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) AddCredits(ctx context.Context, id uuid.UUID, credits int64) error {
	args := m.Called(ctx, id, credits)
	return args.Error(0)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetCustodialByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByAddress(ctx context.Context, chain, address string) (*entities.Wallet, error) {
	args := m.Called(ctx, chain, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock CreditTransactionRepository
type MockCreditTransactionRepository struct {
	mock.Mock
}

func (m *MockCreditTransactionRepository) Create(ctx context.Context, tx *entities.CreditTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCreditTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CreditTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CreditTransaction), args.Error(1)
}

func (m *MockCreditTransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.CreditTransaction, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.CreditTransaction), args.Int(1), args.Error(2)
}

func (m *MockCreditTransactionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entities.CreditTransaction, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CreditTransaction), args.Error(1)
}

func (m *MockCreditTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, txHash string) error {
	args := m.Called(ctx, id, status, txHash)
	return args.Error(0)
}

func (m *MockCreditTransactionRepository) CountByStatus(ctx context.Context) (map[entities.TransactionStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.TransactionStatus]int64), args.Error(1)
}

// Mock ProviderClient
type MockProviderClient struct {
	mock.Mock
}

func (m *MockProviderClient) ListWallets(ctx context.Context, refID string) ([]custodial.ProviderWallet, error) {
	args := m.Called(ctx, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]custodial.ProviderWallet), args.Error(1)
}

func (m *MockProviderClient) GetWalletBalances(ctx context.Context, walletID string) ([]entities.ProviderBalance, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProviderBalance), args.Error(1)
}

func (m *MockProviderClient) CreateTransfer(ctx context.Context, req custodial.TransferRequest) (*custodial.TransferResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custodial.TransferResponse), args.Error(1)
}

// Mock PaymentMethod
type MockPaymentMethod struct {
	mock.Mock
}

func (m *MockPaymentMethod) EstimateRequiredAmount(credits int64) decimal.Decimal {
	args := m.Called(credits)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockPaymentMethod) CheckSufficiency(ctx context.Context, wallet *entities.Wallet, amount decimal.Decimal) error {
	args := m.Called(ctx, wallet, amount)
	return args.Error(0)
}

func (m *MockPaymentMethod) Dispatch(ctx context.Context, input usecases.DispatchInput) (*usecases.DispatchResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.DispatchResult), args.Error(1)
}
