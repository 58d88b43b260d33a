package store

import "github.com/recipeshelf/recipe-shelf/internal/logger"

// Storages bundles every repository so that the service layer can be wired
// from a single value.
type Storages struct {
	Accounts AccountRepository
	Recipes  RecipeRepository
}

// NewStorages constructs all repositories over the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) Storages {
	return Storages{
		Accounts: NewAccountRepository(db, logger),
		Recipes:  NewRecipeRepository(db, logger),
	}
}
