package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/service"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
)

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := ownerFromContext(r)
	if !ok {
		log.Error().Msg("no account identity in request context")
		respondMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
		return
	}

	var req models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(ctx, owner, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid recipe data provided")
		default:
			log.Err(err).Msg("unexpected error occurred during recipe creation")
		}
		respondError(w, err)
		return
	}

	log.Debug().Str("recipe_id", created.ID).Int64("owner_id", owner.ID).Msg("recipe created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getAllRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipes, err := h.services.RecipeService.GetAllRecipes(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during recipes listing")
		respondError(w, err)
		return
	}

	// the collection serializes as [], never null
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID := chi.URLParam(r, "id")

	recipe, err := h.services.RecipeService.GetRecipe(ctx, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID):
			log.Err(err).Str("recipe_id", recipeID).Msg("malformed recipe id")
		case errors.Is(err, store.ErrRecipeNotFound):
			log.Err(err).Str("recipe_id", recipeID).Msg("recipe was not found")
		default:
			log.Err(err).Str("recipe_id", recipeID).Msg("unexpected error occurred during recipe lookup")
		}
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		respondMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
		return
	}

	var req models.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recipeID := chi.URLParam(r, "id")

	updated, err := h.services.RecipeService.UpdateRecipe(ctx, accountID, recipeID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID) || errors.Is(err, service.ErrNothingToUpdate):
			log.Err(err).Str("recipe_id", recipeID).Msg("invalid update request")
		case errors.Is(err, store.ErrRecipeNotFound):
			// covers both a missing record and someone else's record
			log.Err(err).Str("recipe_id", recipeID).Int64("account_id", accountID).Msg("recipe was not found")
		default:
			log.Err(err).Str("recipe_id", recipeID).Msg("unexpected error occurred during recipe update")
		}
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		respondMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
		return
	}

	recipeID := chi.URLParam(r, "id")

	if err := h.services.RecipeService.DeleteRecipe(ctx, accountID, recipeID); err != nil {
		switch {
		case errors.Is(err, store.ErrRecipeNotFound):
			log.Err(err).Str("recipe_id", recipeID).Int64("account_id", accountID).Msg("recipe was not found")
		default:
			log.Err(err).Str("recipe_id", recipeID).Msg("unexpected error occurred during recipe deletion")
		}
		respondError(w, err)
		return
	}

	respondMessage(w, "recipe deleted", http.StatusOK)
}

// ownerFromContext assembles the authenticated owner account from the
// identity the auth middleware stored in the request context.
func ownerFromContext(r *http.Request) (models.Account, bool) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return models.Account{}, false
	}

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		return models.Account{}, false
	}

	return models.Account{ID: accountID, Username: username}, true
}
