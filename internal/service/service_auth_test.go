package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/recipeshelf/recipe-shelf/internal/config"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/mock"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthSvc creates an authService backed by repository mocks.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockAccountRepository,
	*mock.MockRecipeRepository,
) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockRecipes := mock.NewMockRecipeRepository(ctrl)

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "recipe-shelf-test",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(mockAccounts, mockRecipes, cfg, logger.Nop()).(*authService)

	return svc, mockAccounts, mockRecipes
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username: "gordon",
		Email:    "gordon@example.com",
		Password: "beef-wellington",
	}

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, account models.Account) (models.Account, error) {
			assert.Equal(t, req.Username, account.Username)
			assert.Equal(t, req.Email, account.Email)
			assert.NotEqual(t, req.Password, account.PasswordHash, "password must be hashed before persistence")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)))

			account.ID = 42
			return account, nil
		},
	)

	registered, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.ID)
	assert.Equal(t, "gordon", registered.Username)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "no username", req: models.RegisterRequest{Email: "a@b.c", Password: "pw"}},
		{name: "no email", req: models.RegisterRequest{Username: "a", Password: "pw"}},
		{name: "no password", req: models.RegisterRequest{Username: "a", Email: "a@b.c"}},
		{name: "all empty", req: models.RegisterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).
		Return(models.Account{}, store.ErrAccountAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "gordon",
		Email:    "gordon@example.com",
		Password: "beef-wellington",
	})
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("beef-wellington")
	require.NoError(t, err)

	stored := models.Account{
		ID:           42,
		Username:     "gordon",
		Email:        "gordon@example.com",
		PasswordHash: hash,
	}

	mockAccounts.EXPECT().FindAccountByIdentity(ctx, "gordon").Return(stored, nil)

	found, err := svc.Login(ctx, models.LoginRequest{Username: "gordon", Password: "beef-wellington"})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("beef-wellington")
	require.NoError(t, err)

	// no username: the email becomes the lookup identifier
	mockAccounts.EXPECT().FindAccountByIdentity(ctx, "gordon@example.com").
		Return(models.Account{ID: 42, PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "gordon@example.com", Password: "beef-wellington"})
	require.NoError(t, err)
}

func TestAuthService_Login_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	mockAccounts.EXPECT().FindAccountByIdentity(ctx, "ghost").
		Return(models.Account{}, store.ErrAccountNotFound)
	_, errUnknown := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "anything"})

	mockAccounts.EXPECT().FindAccountByIdentity(ctx, "gordon").
		Return(models.Account{ID: 42, PasswordHash: hash}, nil)
	_, errWrongPassword := svc.Login(ctx, models.LoginRequest{Username: "gordon", Password: "wrong-password"})

	// unknown account and wrong password must be indistinguishable
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPassword)
}

func TestAuthService_Login_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	mockAccounts.EXPECT().FindAccountByIdentity(ctx, "gordon").Return(models.Account{}, storeErr)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "gordon", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := models.Account{ID: 42, Username: "gordon", Email: "gordon@example.com"}

	token, err := svc.CreateToken(ctx, account)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)

	accountID, err := parsed.GetAccountID()
	require.NoError(t, err)
	assert.Equal(t, account.ID, accountID)
	assert.Equal(t, account.Username, parsed.Claims.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-jwt-at-all")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken(svc.tokenIssuer, models.Account{ID: 42}, time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Tokens_NoSigningKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockRecipes := mock.NewMockRecipeRepository(ctrl)

	// constructing without a signing key must succeed; only token
	// operations report the missing configuration
	cfg := config.Auth{TokenIssuer: "recipe-shelf-test", TokenDuration: time.Hour}
	svc := NewAuthService(mockAccounts, mockRecipes, cfg, logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateToken(ctx, models.Account{ID: 42})
	assert.ErrorIs(t, err, ErrSigningKeyNotConfigured)

	_, err = svc.ParseToken(ctx, "whatever")
	assert.ErrorIs(t, err, ErrSigningKeyNotConfigured)
}

// ── DeleteAccount ────────────────────────────────────────────────────────────

func TestAuthService_DeleteAccount_CascadeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockRecipes := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRecipes.EXPECT().DeleteRecipesByOwner(ctx, int64(42)).Return(int64(3), nil),
		mockAccounts.EXPECT().DeleteAccount(ctx, int64(42)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 42))
}

func TestAuthService_DeleteAccount_NoOwnedRecipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockRecipes := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRecipes.EXPECT().DeleteRecipesByOwner(ctx, int64(42)).Return(int64(0), nil),
		mockAccounts.EXPECT().DeleteAccount(ctx, int64(42)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 42))
}

func TestAuthService_DeleteAccount_RecipeCascadeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRecipes := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	cascadeErr := errors.New("recipes table is locked")
	mockRecipes.EXPECT().DeleteRecipesByOwner(ctx, int64(42)).Return(int64(0), cascadeErr)
	// account deletion must not be attempted

	err := svc.DeleteAccount(ctx, 42)
	assert.ErrorIs(t, err, cascadeErr)
}

func TestAuthService_DeleteAccount_AccountGoneAfterCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockRecipes := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRecipes.EXPECT().DeleteRecipesByOwner(ctx, int64(42)).Return(int64(2), nil),
		mockAccounts.EXPECT().DeleteAccount(ctx, int64(42)).Return(store.ErrAccountNotFound),
	)

	err := svc.DeleteAccount(ctx, 42)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}
