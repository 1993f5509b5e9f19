package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       *authService
	userRepo      *mockRepo.MockUserRepository
	sessionRepo   *mockRepo.MockSessionRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	codeGenerator *mockSvc.MockCodeGenerator
	mailer        *mockSvc.MockMailer
	metrics       *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:      mockRepo.NewMockUserRepository(t),
		sessionRepo:   mockRepo.NewMockSessionRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		tokenService:  mockSvc.NewMockTokenService(t),
		codeGenerator: mockSvc.NewMockCodeGenerator(t),
		mailer:        mockSvc.NewMockMailer(t),
		metrics:       mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:      fx.userRepo,
		SessionRepo:   fx.sessionRepo,
		Hasher:        fx.hasher,
		TokenService:  fx.tokenService,
		CodeGenerator: fx.codeGenerator,
		Mailer:        fx.mailer,
		Metrics:       fx.metrics,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*authService)
	fx.metrics.EXPECT().AuthEvent(mock.Anything, mock.Anything).Return().Maybe()

	return fx
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "Ada", user.Name)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.RoleCustomer, user.Role)
			user.ID = userID

			return nil
		})
	fx.tokenService.EXPECT().GenerateTokens(userID).Return(tokens, nil)
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().StoreRefreshToken(ctx, userID, "refresh", 7*24*time.Hour).Return(nil)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     "Ada",
		Email:    "  Ada@Example.com ",
		Phone:    "555-0100",
		Password: "secret1",
		Role:     entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, tokens, output.Tokens)
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)

	for _, password := range []string{"a", "abc", "12345", "héllo"} {
		t.Run(password, func(t *testing.T) {
			output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
				Name:     "Ada",
				Email:    "ada@example.com",
				Phone:    "555-0100",
				Password: password,
			})

			assert.Nil(t, output)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
	// Create is never expected, so the mock fails the test if it is called.
}

func TestAuthService_Signup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       *usecase.SignupInput
		setup       func(fx authServiceFixtures)
		expectedErr error
	}{
		{
			name:        "missing fields",
			input:       &usecase.SignupInput{Email: "ada@example.com", Password: "secret1"},
			setup:       func(authServiceFixtures) {},
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "email already registered",
			input: &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Phone: "1", Password: "secret1"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)
			},
			expectedErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:  "hash failure",
			input: &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Phone: "1", Password: "secret1"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("boom"))
			},
			expectedErr: domainerrors.ErrPasswordHashFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			_, err := fx.service.Signup(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
		})
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").
			Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Login_SecondLoginRevokesFirstRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	// Single-slot registry backed by a local variable.
	var stored string
	fx.sessionRepo.EXPECT().StoreRefreshToken(ctx, user.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, token string, _ time.Duration) error {
			stored = token

			return nil
		})
	fx.sessionRepo.EXPECT().GetRefreshToken(ctx, user.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (string, error) {
			return stored, nil
		})

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(time.Hour)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).
		Return(&entity.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, nil).Once()
	fx.tokenService.EXPECT().GenerateTokens(user.ID).
		Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil).Once()
	fx.tokenService.EXPECT().ValidateRefreshToken(mock.Anything).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("a3", nil)

	first, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
	second, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)

	_, err = fx.service.RefreshToken(ctx, first.Tokens.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenRevoked))

	access, err := fx.service.RefreshToken(ctx, second.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "a3", access)
}

func TestAuthService_RefreshToken_Errors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		token       string
		setup       func(fx authServiceFixtures)
		expectedErr error
	}{
		{
			name:        "missing token",
			setup:       func(authServiceFixtures) {},
			expectedErr: domainerrors.ErrRefreshTokenMissing,
		},
		{
			name:  "invalid signature",
			token: "forged",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateRefreshToken("forged").Return(nil, errors.New("signature is invalid"))
			},
			expectedErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "not on record",
			token: "r1",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: userID}, nil)
				fx.sessionRepo.EXPECT().GetRefreshToken(mock.Anything, userID).Return("", repository.ErrRefreshTokenNotFound)
			},
			expectedErr: domainerrors.ErrRefreshTokenRevoked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			_, err := fx.service.RefreshToken(context.Background(), tt.token)

			assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes stored token", func(t *testing.T) {
		fx := createTestAuthService(t)
		userID := uuid.New()
		fx.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: userID}, nil)
		fx.sessionRepo.EXPECT().DeleteRefreshToken(mock.Anything, userID).Return(nil)

		fx.service.Logout(context.Background(), "r1")
	})

	t.Run("ignores invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("malformed"))

		fx.service.Logout(context.Background(), "garbage")
	})

	t.Run("ignores missing token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.service.Logout(context.Background(), "")
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sends reset link", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.service.now = fixedClock(now)
		user := &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
		fx.codeGenerator.EXPECT().ResetToken().Return("tok en", nil)
		fx.sessionRepo.EXPECT().SaveResetGrant(mock.Anything, &entity.PasswordResetGrant{
			Token:     "tok en",
			UserID:    user.ID,
			ExpiresAt: now.Add(time.Hour),
		}, time.Hour).Return(nil)
		fx.mailer.EXPECT().SendPasswordReset(mock.Anything, &service.PasswordResetMail{
			To:       "ada@example.com",
			Name:     "Ada",
			ResetURL: testClientURL + "/reset-password?token=tok+en",
		}).Return(nil)

		require.NoError(t, fx.service.ForgotPassword(context.Background(), "ADA@example.com"))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		err := fx.service.ForgotPassword(context.Background(), "ghost@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrEmailNotFound))
	})

	t.Run("mail failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: uuid.New(), Email: "ada@example.com"}, nil)
		fx.codeGenerator.EXPECT().ResetToken().Return("tok", nil)
		fx.sessionRepo.EXPECT().SaveResetGrant(mock.Anything, mock.Anything, time.Hour).Return(nil)
		fx.mailer.EXPECT().SendPasswordReset(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		err := fx.service.ForgotPassword(context.Background(), "ada@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	})
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(now)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "old"}
	grant := &entity.PasswordResetGrant{Token: "tok", UserID: user.ID, ExpiresAt: now.Add(time.Minute)}
	tokens := &entity.TokenPair{AccessToken: "a", RefreshToken: "r"}

	fx.sessionRepo.EXPECT().GetResetGrant(ctx, "tok").Return(grant, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.sessionRepo.EXPECT().DeleteRefreshToken(ctx, user.ID).Return(nil)
	fx.hasher.EXPECT().Hash("newsecret").Return("new", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new").Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return(tokens, nil)
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(time.Hour)
	fx.sessionRepo.EXPECT().StoreRefreshToken(ctx, user.ID, "r", time.Hour).Return(nil)
	fx.sessionRepo.EXPECT().DeleteResetGrant(ctx, "tok").Return(nil)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "tok", NewPassword: "newsecret"})

	require.NoError(t, err)
	assert.Equal(t, tokens, output.Tokens)
	assert.Equal(t, "new", output.User.PasswordHash)
}

func TestAuthService_ResetPassword_ExpiredGrantIsDeleted(t *testing.T) {
	fx := createTestAuthService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(now)

	ctx := context.Background()
	expired := &entity.PasswordResetGrant{Token: "tok", UserID: uuid.New(), ExpiresAt: now.Add(-time.Second)}

	fx.sessionRepo.EXPECT().GetResetGrant(ctx, "tok").Return(expired, nil).Once()
	fx.sessionRepo.EXPECT().DeleteResetGrant(ctx, "tok").Return(nil).Once()
	fx.sessionRepo.EXPECT().GetResetGrant(ctx, "tok").Return(nil, repository.ErrResetGrantNotFound).Once()

	input := &usecase.ResetPasswordInput{Token: "tok", NewPassword: "newsecret"}

	_, err := fx.service.ResetPassword(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenExpired))

	_, err = fx.service.ResetPassword(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(now)

	fx.sessionRepo.EXPECT().GetResetGrant(mock.Anything, "tok").
		Return(&entity.PasswordResetGrant{Token: "tok", UserID: uuid.New(), ExpiresAt: now.Add(time.Hour)}, nil)

	_, err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "tok", NewPassword: "abc"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_RecordsMetrics(t *testing.T) {
	fx := authServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		metrics:  mockSvc.NewMockMetricsRecorder(t),
	}
	srv := NewAuthService(AuthServiceParams{
		UserRepo: fx.userRepo,
		Metrics:  fx.metrics,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.metrics.EXPECT().AuthEvent(authEventLogin, service.OutcomeFailure).Return().Once()

	_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com"})

	require.Error(t, err)
}
