package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. It executes all recipe CRUD operations directly
// against the "recipes" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (recipe_id, owner_id, etc.).
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads one recipe row in the [recipeColumns] order, decoding the
// JSONB ingredients payload into the ordered string slice.
func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	var rawIngredients []byte

	if err := row.Scan(
		&recipe.ID,
		&recipe.OwnerID,
		&recipe.OwnerName,
		&recipe.Title,
		&recipe.Description,
		&rawIngredients,
		&recipe.Instructions,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	); err != nil {
		return models.Recipe{}, err
	}

	if err := json.Unmarshal(rawIngredients, &recipe.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: ingredients payload: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

// CreateRecipe persists a new recipe record and returns the canonical
// database representation with server-assigned timestamps.
//
// The caller is responsible for populating ID, OwnerID, and OwnerName; the
// ingredients slice is serialized to JSONB to preserve its order.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	rawIngredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.CreateRecipe").
			Int64("owner_id", recipe.OwnerID).
			Msg("failed to serialize ingredients")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, createRecipe,
		recipe.ID,
		recipe.OwnerID,
		recipe.OwnerName,
		recipe.Title,
		recipe.Description,
		rawIngredients,
		recipe.Instructions,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.CreateRecipe").
			Int64("owner_id", recipe.OwnerID).
			Msg("error executing recipe insert")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	created, err := scanRecipe(row)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.CreateRecipe").
			Int64("owner_id", recipe.OwnerID).
			Msg("error: scanning error")
		return models.Recipe{}, err
	}

	return created, nil
}

// GetRecipe retrieves a single recipe by its UUID, regardless of owner.
//
// Error handling:
//   - No matching row → [ErrRecipeNotFound].
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *recipeRepository) GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getRecipeByID, recipeID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.GetRecipe").
			Str("recipe_id", recipeID).
			Msg("error executing recipe select")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).
			Str("func", "*recipeRepository.GetRecipe").
			Str("recipe_id", recipeID).
			Msg("error: scanning error")
		return models.Recipe{}, err
	}

	return recipe, nil
}

// GetAllRecipes retrieves every recipe in the store, newest first.
//
// Returns an empty slice (never nil) when the table is empty.
func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllRecipes)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.GetAllRecipes").
			Msg("failed to execute query for getting all recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Recipe, 0, 50)

	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*recipeRepository.GetAllRecipes").
				Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*recipeRepository.GetAllRecipes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateRecipe applies a partial update to the recipe matching
// {update.ID, update.OwnerID} and returns the updated row.
//
// Error handling:
//   - Query construction failure (nothing to update) → [ErrBuildingSQLQuery].
//   - No matching row — missing recipe OR foreign owner → [ErrRecipeNotFound].
func (r *recipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.UpdateRecipe").
			Str("recipe_id", update.ID).
			Int64("owner_id", update.OwnerID).
			Msg("failed to create query")
		return models.Recipe{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.UpdateRecipe").
			Str("recipe_id", update.ID).
			Int64("owner_id", update.OwnerID).
			Msg("error executing recipe update")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).
			Str("func", "*recipeRepository.UpdateRecipe").
			Str("recipe_id", update.ID).
			Int64("owner_id", update.OwnerID).
			Msg("error: scanning error")
		return models.Recipe{}, err
	}

	return updated, nil
}

// DeleteRecipe removes the recipe matching {recipeID, ownerID}.
//
// Error handling:
//   - Zero rows affected — missing recipe OR foreign owner →
//     [ErrRecipeNotFound].
//   - Any driver-level error → wrapped with [ErrExecutingStatement].
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID string, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRecipe, recipeID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.DeleteRecipe").
			Str("recipe_id", recipeID).
			Int64("owner_id", ownerID).
			Msg("error executing recipe delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// DeleteRecipesByOwner removes all recipes owned by the given account and
// returns the number of deleted rows. A zero count is a valid outcome — the
// account simply owned no recipes.
func (r *recipeRepository) DeleteRecipesByOwner(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRecipesByOwner, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.DeleteRecipesByOwner").
			Int64("owner_id", ownerID).
			Msg("error executing owner-scoped recipe delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
