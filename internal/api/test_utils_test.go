package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/repository"
	"github.com/forkful/recipe-api/internal/router"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/testhelpers"
)

// setupTestRouter builds the full application router over an isolated
// in-memory database, with images stored in a per-test temp directory.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	return setupTestRouterWithLimiter(t, nil)
}

func setupTestRouterWithLimiter(t *testing.T, writeLimiter *middleware.RateLimiter) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)

	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	authService := service.NewAuthService(db, "test-secret")
	imageService := service.NewImageService(service.NewLocalStore(t.TempDir()))

	handlers := router.Handlers{
		User:       api.NewUserHandler(authService),
		Tag:        api.NewTagHandler(service.NewTagService(tagRepo)),
		Ingredient: api.NewIngredientHandler(service.NewIngredientService(ingredientRepo)),
		Recipe:     api.NewRecipeHandler(service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo), imageService),
	}

	return router.SetupRouter(handlers, authService, writeLimiter, nil), db
}

// doJSON performs a JSON request against the router, with an optional
// bearer token.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// createUserAndToken registers an account and returns a bearer token.
func createUserAndToken(t *testing.T, engine *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": password,
	})
	if w.Code != 201 {
		t.Fatalf("failed to register user %s: status %d body %s", email, w.Code, w.Body.String())
	}

	w = doJSON(t, engine, "POST", "/api/v1/user/token", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != 200 {
		t.Fatalf("failed to get token for %s: status %d body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}
	return resp.Token
}

// decodeList unmarshals a JSON array response and returns the "name" or
// "title" field of each element, in order.
func decodeNames(t *testing.T, body []byte, field string) []string {
	t.Helper()

	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i], _ = item[field].(string)
	}
	return names
}
