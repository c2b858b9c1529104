package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/usecases"
	"usdc-credits.backend/pkg/crypto"
	"usdc-credits.backend/pkg/jwt"
)

func newAuthUsecaseForTest(userRepo *MockUserRepository) *usecases.AuthUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtSvc)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "new@mail.com").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "new@mail.com" && u.Role == entities.UserRoleUser && u.PasswordHash != "password123"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.User).ID = uuid.New()
	}).Return(nil).Once()

	resp, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:    "new@mail.com",
		Name:     "New User",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "new@mail.com", resp.User.Email)
}

func TestAuthUsecase_Register_EmailAlreadyExists(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "exists@mail.com").Return(&entities.User{ID: uuid.New()}, nil).Once()

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:    "exists@mail.com",
		Name:     "Dup",
		Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo)

	hash, err := crypto.HashPassword("correct-password")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "a@mail.com", PasswordHash: hash, Role: entities.UserRoleUser}

	userRepo.On("GetByEmail", mock.Anything, "a@mail.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: "a@mail.com", Password: "correct-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = uc.Login(context.Background(), &entities.LoginInput{Email: "a@mail.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "ghost@mail.com").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "ghost@mail.com", Password: "whatever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Me(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{ID: userID, Credits: 42}, nil).Once()

	user, err := uc.Me(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.Credits)
}
