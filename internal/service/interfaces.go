package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/recipeshelf/recipe-shelf/models"
)

// AuthService handles account registration, credential verification, the
// session token lifecycle, and account deletion.
type AuthService interface {
	// Register creates a new account from the registration request,
	// hashing the password before persistence.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login verifies the supplied credentials and returns the account on
	// success. Unknown identifier and wrong password are both reported as
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// CreateToken issues a signed session token for the given account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates and decodes a raw token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// DeleteAccount removes the account and, beforehand, every recipe it
	// owns. The two steps are not atomic.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// RecipeService implements the recipe CRUD business rules: input
// validation, identifier checks, and the owner-scoped mutation semantics.
type RecipeService interface {
	CreateRecipe(ctx context.Context, owner models.Account, req models.CreateRecipeRequest) (models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error)
	GetAllRecipes(ctx context.Context) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, ownerID int64, recipeID string, req models.UpdateRecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, ownerID int64, recipeID string) error
}
