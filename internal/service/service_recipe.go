package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
)

// recipeService is the concrete implementation of RecipeService.
//
// It validates request input and identifier shape, assigns new recipe IDs,
// and delegates persistence to the RecipeRepository. Authorization is not
// re-checked here: the repository's {id, owner_id} filters enforce it, and
// this layer only decides which owner value flows into them.
type recipeService struct {
	recipes store.RecipeRepository
	uuidGen *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewRecipeService constructs a RecipeService over the given repository.
func NewRecipeService(recipes store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipes: recipes,
		uuidGen: utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// CreateRecipe validates the creation request and persists a new recipe
// owned by the given account.
//
// Title, description, ingredients (present as an array), and instructions
// are all required; a missing field yields ErrInvalidDataProvided. The
// recipe ID is
// assigned here (UUIDv7) and the owner's username is denormalized onto the
// record.
func (s *recipeService) CreateRecipe(ctx context.Context, owner models.Account, req models.CreateRecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Description == "" || req.Ingredients == nil || req.Instructions == "" {
		log.Error().Int64("owner_id", owner.ID).Msg("invalid recipe data provided")
		return models.Recipe{}, ErrInvalidDataProvided
	}

	created, err := s.recipes.CreateRecipe(ctx, models.Recipe{
		ID:           s.uuidGen.Generate(),
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  *req.Ingredients,
		Instructions: req.Instructions,
		OwnerID:      owner.ID,
		OwnerName:    owner.Username,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", owner.ID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

// GetRecipe retrieves a single recipe by ID. No authentication is involved.
//
// Returns ErrInvalidRecipeID for a malformed identifier and passes
// store.ErrRecipeNotFound through for a missing one.
func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	return s.recipes.GetRecipe(ctx, recipeID)
}

// GetAllRecipes returns every stored recipe, newest first.
func (s *recipeService) GetAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.GetAllRecipes(ctx)
}

// UpdateRecipe applies a partial update to the caller's recipe.
//
// Returns:
//   - ErrInvalidRecipeID for a malformed identifier.
//   - ErrNothingToUpdate when the request carries no recognized field.
//   - store.ErrRecipeNotFound when no row matches {recipeID, ownerID} —
//     including the case where the recipe exists but belongs to someone
//     else.
func (s *recipeService) UpdateRecipe(ctx context.Context, ownerID int64, recipeID string, req models.UpdateRecipeRequest) (models.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	update := models.RecipeUpdate{
		ID:           recipeID,
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}
	if !update.HasChanges() {
		return models.Recipe{}, ErrNothingToUpdate
	}

	return s.recipes.UpdateRecipe(ctx, update)
}

// DeleteRecipe removes the caller's recipe.
//
// A malformed identifier cannot match any stored record, so it is reported
// as store.ErrRecipeNotFound rather than as a validation failure — the
// delete route does not distinguish the two.
func (s *recipeService) DeleteRecipe(ctx context.Context, ownerID int64, recipeID string) error {
	if _, err := uuid.Parse(recipeID); err != nil {
		return store.ErrRecipeNotFound
	}

	return s.recipes.DeleteRecipe(ctx, recipeID, ownerID)
}
