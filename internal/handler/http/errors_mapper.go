package http

import (
	"errors"
	"net/http"

	"github.com/recipeshelf/recipe-shelf/internal/service"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/internal/utils"
	"github.com/recipeshelf/recipe-shelf/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRecipeID:         http.StatusBadRequest,
	service.ErrNothingToUpdate:         http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSigningKeyNotConfigured: http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrAccountAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:      http.StatusNotFound,
	store.ErrRecipeNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// respondError maps err to an HTTP status and writes the uniform
// {"message": "..."} body.
//
// Client-facing statuses (4xx) carry the text of the matched sentinel error;
// everything that maps to 500 — including errors not present in
// errorStatusMap at all — responds with the generic status text so that no
// internal detail leaks. The concrete error is expected to have been logged
// by the caller already.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	for target, mappedStatus := range errorStatusMap {
		if errors.Is(err, target) {
			status = mappedStatus
			if status < http.StatusInternalServerError {
				message = target.Error()
			}
			break
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// respondMessage writes an arbitrary {"message": "..."} body with the given
// status. Used for success acknowledgements and for failures that do not
// originate from a sentinel error (e.g. undecodable JSON).
func respondMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
