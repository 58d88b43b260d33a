package service

import (
	"github.com/recipeshelf/recipe-shelf/internal/config"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/store"
)

// Services bundles every business-logic service for handler wiring.
type Services struct {
	AuthService   AuthService
	RecipeService RecipeService
}

// NewServices constructs all services over the given storages.
func NewServices(storages store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.Accounts, storages.Recipes, cfg.Auth, logger),
		RecipeService: NewRecipeService(storages.Recipes, logger),
	}
}
