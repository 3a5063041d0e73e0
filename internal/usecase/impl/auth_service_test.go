package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/domain/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	userRepo       *MockUserRepository
	credentialRepo *MockCredentialRepository
	hasher         *MockPasswordHasher
	tokenService   *MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := new(MockUserRepository)
	credentialRepo := new(MockCredentialRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	txManager := &stubTxManager{factory: &stubRepoFactory{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
	}}

	svc := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        svc,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Email: "test@example.com", Password: "password123"}
	userID := uuid.New()

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fixtures.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = userID
		}).
		Return(nil)
	fixtures.credentialRepo.On("Create", ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(args mock.Arguments) {
			credential := args.Get(1).(*entity.Credential)
			assert.Equal(t, userID, credential.UserID)
			assert.Equal(t, "hashed_password", credential.PasswordHash)
		}).
		Return(nil)
	fixtures.tokenService.On("Issue", userID).Return("signed.jwt.token", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	fixtures.userRepo.AssertExpectations(t)
	fixtures.credentialRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailAlreadyRegistered(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Email: "taken@example.com", Password: "password123"}

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fixtures.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fixtures.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	fixtures.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Email: "test@example.com", Password: "password123"}

	fixtures.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fixtures.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	credential := &entity.Credential{UserID: user.ID, PasswordHash: "hashed_password"}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).Return(credential, nil)
	fixtures.hasher.On("Check", "password123", "hashed_password").Return(true)
	fixtures.tokenService.On("Issue", user.ID).Return("signed.jwt.token", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "password123"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	credential := &entity.Credential{UserID: user.ID, PasswordHash: "hashed_password"}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).Return(credential, nil)
	fixtures.hasher.On("Check", "wrongpassword", "hashed_password").Return(false)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrongpassword"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_MissingCredential(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).
		Return(nil, repository.ErrCredentialNotFound)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "password123"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ResolveIdentity_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fixtures.tokenService.On("Verify", "valid.jwt.token").
		Return(&service.Claims{UserID: user.ID}, nil)
	fixtures.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	resolved, err := fixtures.service.ResolveIdentity(ctx, "valid.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestAuthService_ResolveIdentity_InvalidToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenService.On("Verify", "garbage").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("invalid token"))

	resolved, err := fixtures.service.ResolveIdentity(ctx, "garbage")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	fixtures.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthService_ResolveIdentity_DeletedUser(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()

	fixtures.tokenService.On("Verify", "valid.jwt.token").
		Return(&service.Claims{UserID: userID}, nil)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	resolved, err := fixtures.service.ResolveIdentity(ctx, "valid.jwt.token")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
