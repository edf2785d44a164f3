package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/middleware"
)

// Handlers groups the API handlers wired into the router.
type Handlers struct {
	User       *api.UserHandler
	Tag        *api.TagHandler
	Ingredient *api.IngredientHandler
	Recipe     *api.RecipeHandler
}

// SetupRouter configures the application routes. The user endpoints are
// public; everything under /recipe requires a bearer token. The write
// limiter is optional and only guards mutating requests.
func SetupRouter(h Handlers, validator middleware.TokenValidator, writeLimiter *middleware.RateLimiter, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	h.User.RegisterRoutes(v1)

	protected := v1.Group("/recipe")
	protected.Use(middleware.AuthMiddleware(validator))
	if writeLimiter != nil {
		limit := writeLimiter.RateLimitMiddleware()
		protected.Use(func(c *gin.Context) {
			if c.Request.Method == http.MethodPost {
				limit(c)
				return
			}
			c.Next()
		})
	}

	h.Tag.RegisterRoutes(protected)
	h.Ingredient.RegisterRoutes(protected)
	h.Recipe.RegisterRoutes(protected)

	return router
}
