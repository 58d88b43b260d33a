package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recipeshelf/recipe-shelf/internal/config"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, the JWT token
// lifecycle, and account deletion with its recipe cascade. Passwords are
// stored as bcrypt hashes; tokens are signed with HMAC-SHA256.
type authService struct {
	// accounts is the data-access layer used to create, look up, and
	// delete account records.
	accounts store.AccountRepository

	// recipes is used only by DeleteAccount to remove the account's owned
	// recipes before the account itself.
	recipes store.RecipeRepository

	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens. An empty value makes every token operation fail with
	// ErrSigningKeyNotConfigured.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accounts store.AccountRepository, recipes store.RecipeRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		recipes:       recipes,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account.
//
// It validates that username, e-mail, and password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the
// AccountRepository. The returned account carries the server-assigned ID and
// never the plain-text password.
//
// Returns:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrAccountAlreadyExists (wrapped) if the username or e-mail is
//     already taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, ErrInvalidDataProvided
	}

	registered, err := a.accounts.CreateAccount(ctx, models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account.
//
// The identifier (username or e-mail) is resolved in a single repository
// lookup and the password is compared against the stored bcrypt hash. An
// unknown identifier and a wrong password both yield ErrInvalidCredentials —
// the caller cannot tell which check failed.
//
// Returns:
//   - ErrInvalidDataProvided if the identifier or password is empty.
//   - ErrInvalidCredentials on any authentication failure.
//   - A wrapped storage error for unexpected repository failures.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	identifier := req.Identifier()
	if identifier == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	found, err := a.accounts.FindAccountByIdentity(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// same failure as a wrong password, no enumeration
			return models.Account{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("account search by identifier failed")
		return models.Account{}, fmt.Errorf("account search by identifier failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, found.PasswordHash) {
		log.Warn().Int64("account_id", found.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return found, nil
}

// CreateToken issues a signed session token for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns ErrSigningKeyNotConfigured when no signing key is set, or a
// wrapped error if token generation fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrSigningKeyNotConfigured
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
//
// Returns ErrSigningKeyNotConfigured when no signing key is set — callers
// must treat that as a server configuration error, not as a bad token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrSigningKeyNotConfigured
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// DeleteAccount removes the account and every recipe it owns.
//
// The cascade runs in two independent statements: recipes first, then the
// account. There is no surrounding transaction — if the account deletion
// fails after the recipes are gone, the recipes stay deleted and the error
// is reported to the caller. That partial outcome is accepted; the log entry
// records the count of already-removed recipes.
//
// Returns store.ErrAccountNotFound when the account is already gone at
// deletion time.
func (a *authService) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	deleted, err := a.recipes.DeleteRecipesByOwner(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("deleting owned recipes failed")
		return fmt.Errorf("deleting owned recipes failed: %w", err)
	}

	if err := a.accounts.DeleteAccount(ctx, accountID); err != nil {
		log.Err(err).
			Int64("account_id", accountID).
			Int64("recipes_already_deleted", deleted).
			Msg("account deletion failed after recipe cascade")
		return err
	}

	log.Info().Int64("account_id", accountID).Int64("recipes_deleted", deleted).Msg("account deleted")

	return nil
}
