package api_test

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/models"
)

func TestCreateUserSuccess(t *testing.T) {
	engine, db := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy Jr.",
		"email":    "test@example.com",
		"password": "test123",
	})
	assert.Equal(t, 201, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test@example.com", resp["email"])
	assert.NotContains(t, resp, "password")
	assert.NotContains(t, resp, "password_hash")

	var user models.User
	require.NoError(t, db.Where("email = ?", "test@example.com").First(&user).Error)
	assert.Equal(t, "Testy Jr.", user.Name)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	engine, db := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy",
		"email":    "Test@EXAMPLE.Com",
		"password": "test123",
	})
	assert.Equal(t, 201, w.Code)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestCreateUserDuplicate(t *testing.T) {
	engine, db := setupTestRouter(t)

	payload := gin.H{"name": "Testy", "email": "test@example.com", "password": "test123"}
	w := doJSON(t, engine, "POST", "/api/v1/user", "", payload)
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/user", "", payload)
	assert.Equal(t, 400, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateUserShortPassword(t *testing.T) {
	engine, db := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy",
		"email":    "test@example.com",
		"password": "pw",
	})
	assert.Equal(t, 400, w.Code)

	// The rejected registration persisted nothing.
	var count int64
	db.Model(&models.User{}).Where("email = ?", "test@example.com").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateUserMissingEmail(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy",
		"password": "test123",
	})
	assert.Equal(t, 400, w.Code)
}

func TestCreateUserMissingName(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"email":    "test@example.com",
		"password": "test123",
	})
	assert.Equal(t, 400, w.Code)
}

func TestTokenForUser(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy",
		"email":    "test@example.com",
		"password": "test123",
	})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/user/token", "", gin.H{
		"email":    "test@example.com",
		"password": "test123",
	})
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "token")
	assert.NotEmpty(t, resp["token"])
}

func TestTokenInvalidCredentials(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user", "", gin.H{
		"name":     "Testy",
		"email":    "test@example.com",
		"password": "test123",
	})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/user/token", "", gin.H{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, 400, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestTokenUnknownUser(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/user/token", "", gin.H{
		"email":    "nobody@example.com",
		"password": "test123",
	})
	assert.Equal(t, 400, w.Code)
}

func TestTokenMissingPassword(t *testing.T) {
	engine, _ := setupTestRouter(t)

	// Missing fields fail validation before any lookup.
	w := doJSON(t, engine, "POST", "/api/v1/user/token", "", gin.H{
		"email":    "something",
		"password": "",
	})
	assert.Equal(t, 400, w.Code)
	assert.NotContains(t, w.Body.String(), `"token"`)
}
