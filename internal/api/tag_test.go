package api_test

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/models"
)

func TestTagsLoginRequired(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "GET", "/api/v1/recipe/tags", "", nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/recipe/tags", "", gin.H{"name": "Vegan"})
	assert.Equal(t, 401, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipe/tags", "not-a-valid-token", nil)
	assert.Equal(t, 401, w.Code)
}

func TestRetrieveTags(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := createUserAndToken(t, engine, "a@x.com", "pass123")

	for _, name := range []string{"Vegan", "Spicy"} {
		w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": name})
		require.Equal(t, 201, w.Code)
	}

	w := doJSON(t, engine, "GET", "/api/v1/recipe/tags", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Vegan", "Spicy"}, decodeNames(t, w.Body.Bytes(), "name"))
}

func TestTagsLimitedToUser(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := createUserAndToken(t, engine, "a@x.com", "pass123")
	otherToken := createUserAndToken(t, engine, "b@x.com", "pass123")

	w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", otherToken, gin.H{"name": "Breakfast"})
	require.Equal(t, 201, w.Code)
	w = doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": "Dinner"})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipe/tags", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Dinner"}, decodeNames(t, w.Body.Bytes(), "name"))
}

func TestCreateTagSuccessful(t *testing.T) {
	engine, db := setupTestRouter(t)
	token := createUserAndToken(t, engine, "a@x.com", "pass123")

	w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": "Test Tag"})
	assert.Equal(t, 201, w.Code)

	var count int64
	db.Model(&models.Tag{}).Where("name = ?", "Test Tag").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateTagInvalid(t *testing.T) {
	engine, db := setupTestRouter(t)
	token := createUserAndToken(t, engine, "a@x.com", "pass123")

	w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": ""})
	assert.Equal(t, 400, w.Code)

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTagsAssignedOnly(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := createUserAndToken(t, engine, "a@x.com", "pass123")

	var spicyID uint
	for _, name := range []string{"Vegan", "Spicy"} {
		w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": name})
		require.Equal(t, 201, w.Code)
		if name == "Spicy" {
			var tag models.Tag
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tag))
			spicyID = tag.ID
		}
	}

	w := doJSON(t, engine, "POST", "/api/v1/recipe/recipes", token, gin.H{
		"title":        "Curry",
		"time_minutes": 30,
		"price":        7.50,
		"tags":         []uint{spicyID},
	})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipe/tags?assigned-only=1", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Spicy"}, decodeNames(t, w.Body.Bytes(), "name"))

	// Falsy or absent filter returns the full owner-scoped listing.
	w = doJSON(t, engine, "GET", "/api/v1/recipe/tags?assigned-only=0", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Vegan", "Spicy"}, decodeNames(t, w.Body.Bytes(), "name"))
}
