package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/internal/service"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, store.ErrAccountAlreadyExists):
			log.Err(err).Msg("username or email already exists")
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
		}
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", registered.ID).Str("username", registered.Username).Msg("account registered")

	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
		default:
			log.Err(err).Msg("unexpected error occurred during login")
		}
		respondError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", found.ID).Msg("account successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Account: found, Token: token.String()}, http.StatusOK)
}

// tokenTest confirms that the presented bearer token passed the auth gate.
// The auth middleware has already validated the token and populated the
// request context, so reaching this handler is the success condition itself.
func (h *Handler) tokenTest(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		respondMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
		return
	}

	respondMessage(w, fmt.Sprintf("token works: authenticated as %s", username), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		respondMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.DeleteAccount(ctx, accountID); err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			log.Err(err).Int64("account_id", accountID).Msg("account was not found")
		default:
			log.Err(err).Int64("account_id", accountID).Msg("unexpected error occurred during account deletion")
		}
		respondError(w, err)
		return
	}

	respondMessage(w, "account deleted", http.StatusOK)
}
