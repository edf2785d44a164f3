package api_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/middleware"
)

// The write limiter guards POST requests in the protected group; reads
// stay unthrottled even once the write budget is spent.
func TestWriteRateLimitAppliesToPostOnly(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     2,
		KeyPrefix: "rate_limit:resource_write",
	})
	engine, _ := setupTestRouterWithLimiter(t, limiter)

	// Registration and token issuance are outside the protected group
	// and never count against the write budget.
	token := createUserAndToken(t, engine, "a@x.com", "pass123")

	w := doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": "Vegan"})
	require.Equal(t, 201, w.Code)
	w = doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": "Spicy"})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/recipe/tags", token, gin.H{"name": "Dessert"})
	assert.Equal(t, 429, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipe/tags", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Vegan", "Spicy"}, decodeNames(t, w.Body.Bytes(), "name"))
}
