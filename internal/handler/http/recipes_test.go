package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/recipeshelf/recipe-shelf/internal/service"
	"github.com/recipeshelf/recipe-shelf/internal/store"
	"github.com/recipeshelf/recipe-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRecipe() models.Recipe {
	return models.Recipe{
		ID:           testRecipeID,
		Title:        "Scrambled eggs",
		Description:  "Soft and creamy",
		Ingredients:  []string{"eggs", "butter"},
		Instructions: "Whisk, then stir over low heat.",
		OwnerID:      testAccountID,
		OwnerName:    testUsername,
	}
}

// ─────────────────────────────────────────────
// createRecipe
// ─────────────────────────────────────────────

func TestCreateRecipe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)

	owner := models.Account{ID: testAccountID, Username: testUsername}
	mockRecipes.EXPECT().CreateRecipe(gomock.Any(), owner, gomock.Any()).
		Return(testRecipe(), nil)

	body := `{"title":"Scrambled eggs","description":"Soft and creamy","ingredients":["eggs","butter"],"instructions":"Whisk, then stir over low heat."}`
	httpReq := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testRecipeID, got.ID)
	assert.Equal(t, testUsername, got.OwnerName)
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)
	mockRecipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Recipe{}, service.ErrInvalidDataProvided)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(`{"title":"only title"}`))
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipe_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, _, router := newTestHandler(t, ctrl)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// getAllRecipes / getRecipe
// ─────────────────────────────────────────────

func TestGetAllRecipes_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetAllRecipes(gomock.Any()).
		Return([]models.Recipe{testRecipe()}, nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, testRecipeID, got[0].ID)
}

func TestGetAllRecipes_EmptyIsArrayNotNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetAllRecipes(gomock.Any()).Return(nil, nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetAllRecipes_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetAllRecipes(gomock.Any()).
		Return(nil, errors.New("pq: relation does not exist"))

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestGetRecipe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetRecipe(gomock.Any(), testRecipeID).Return(testRecipe(), nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes/"+testRecipeID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRecipe_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetRecipe(gomock.Any(), "not-a-uuid").
		Return(models.Recipe{}, service.ErrInvalidRecipeID)

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecipe_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, mockRecipes, router := newTestHandler(t, ctrl)

	mockRecipes.EXPECT().GetRecipe(gomock.Any(), testRecipeID).
		Return(models.Recipe{}, store.ErrRecipeNotFound)

	httpReq := httptest.NewRequest(http.MethodGet, "/api/recipes/"+testRecipeID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateRecipe
// ─────────────────────────────────────────────

func TestUpdateRecipe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)

	updated := testRecipe()
	updated.Title = "Perfect scrambled eggs"
	mockRecipes.EXPECT().UpdateRecipe(gomock.Any(), testAccountID, testRecipeID, gomock.Any()).
		Return(updated, nil)

	httpReq := httptest.NewRequest(http.MethodPatch, "/api/recipes/"+testRecipeID,
		strings.NewReader(`{"title":"Perfect scrambled eggs"}`))
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Perfect scrambled eggs", got.Title)
}

func TestUpdateRecipe_NoRecognizedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)
	mockRecipes.EXPECT().UpdateRecipe(gomock.Any(), testAccountID, testRecipeID, gomock.Any()).
		Return(models.Recipe{}, service.ErrNothingToUpdate)

	httpReq := httptest.NewRequest(http.MethodPatch, "/api/recipes/"+testRecipeID, strings.NewReader(`{}`))
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// someone else's recipe answers byte-for-byte like a missing one
func TestUpdateRecipe_NotOwnedLooksLikeMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)
	expectAuthorized(mockAuth)
	mockRecipes.EXPECT().UpdateRecipe(gomock.Any(), testAccountID, gomock.Any(), gomock.Any()).
		Return(models.Recipe{}, store.ErrRecipeNotFound).Times(2)

	const missingID = "0190b5d8-0000-7000-8000-000000000000"

	responses := make([]*httptest.ResponseRecorder, 0, 2)
	for _, id := range []string{testRecipeID, missingID} {
		httpReq := httptest.NewRequest(http.MethodPatch, "/api/recipes/"+id,
			strings.NewReader(`{"title":"hijack"}`))
		httpReq.Header.Set("Authorization", bearerHeader)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httpReq)
		responses = append(responses, rec)
	}

	assert.Equal(t, http.StatusNotFound, responses[0].Code)
	assert.Equal(t, responses[0].Code, responses[1].Code)
	assert.Equal(t, responses[0].Body.String(), responses[1].Body.String())
}

// ─────────────────────────────────────────────
// deleteRecipe
// ─────────────────────────────────────────────

func TestDeleteRecipe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)
	mockRecipes.EXPECT().DeleteRecipe(gomock.Any(), testAccountID, testRecipeID).Return(nil)

	httpReq := httptest.NewRequest(http.MethodDelete, "/api/recipes/"+testRecipeID, nil)
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recipe deleted", decodeMessage(t, rec.Body.Bytes()))
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mockAuth, mockRecipes, router := newTestHandler(t, ctrl)

	expectAuthorized(mockAuth)
	mockRecipes.EXPECT().DeleteRecipe(gomock.Any(), testAccountID, testRecipeID).
		Return(store.ErrRecipeNotFound)

	httpReq := httptest.NewRequest(http.MethodDelete, "/api/recipes/"+testRecipeID, nil)
	httpReq.Header.Set("Authorization", bearerHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRecipe_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, _, router := newTestHandler(t, ctrl)

	httpReq := httptest.NewRequest(http.MethodDelete, "/api/recipes/"+testRecipeID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
