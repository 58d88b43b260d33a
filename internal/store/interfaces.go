package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/recipeshelf/recipe-shelf/models"
)

// AccountRepository is the persistence contract for account records.
type AccountRepository interface {
	// CreateAccount persists a new account and returns it with
	// server-assigned fields populated.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByIdentity looks an account up by username or e-mail:
	// the single identifier value is matched against both columns.
	FindAccountByIdentity(ctx context.Context, identifier string) (models.Account, error)

	// DeleteAccount removes the account with the given ID.
	// Returns ErrAccountNotFound when no row matches.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// RecipeRepository is the persistence contract for recipe records.
//
// Mutating methods always filter by owner: a zero-row result maps to
// ErrRecipeNotFound regardless of whether the recipe is missing or owned by
// someone else.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error)
	GetAllRecipes(ctx context.Context) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID string, ownerID int64) error

	// DeleteRecipesByOwner removes every recipe owned by the given account
	// and returns the number of rows deleted. Used by the account-deletion
	// cascade; deleting zero rows is not an error.
	DeleteRecipesByOwner(ctx context.Context, ownerID int64) (int64, error)
}
