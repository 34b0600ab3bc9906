package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"msgboard/internal/domain/entity"
	domainerrors "msgboard/internal/domain/errors"
	"msgboard/internal/domain/repository"
	mockRepo "msgboard/internal/mocks/repository"
	mockSvc "msgboard/internal/mocks/service"
	"msgboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.ID, user.Username).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// An unknown username must be indistinguishable from a wrong password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong_password",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.ID, user.Username).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAuthService_UpdatePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdatePasswordInput{
		UserID:   userID,
		Password: "NewPassword456!",
	}

	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "old_hash",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.UpdatePassword(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.UpdatePasswordInput{
		UserID:   uuid.New(),
		Password: "NewPassword456!",
	}

	fx.userRepo.EXPECT().FindByID(ctx, input.UserID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_DeleteUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestAuthService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
