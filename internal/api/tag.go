package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/service"
)

// TagHandler exposes owner-scoped tag listing and creation.
type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	{
		tags.GET("", h.List)
		tags.POST("", h.Create)
	}
}

func (h *TagHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	assignedOnly := isTruthy(c.Query("assigned-only"))
	tags, err := h.tagService.List(c.Request.Context(), userID, assignedOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// isTruthy interprets the assigned-only query parameter; "1" and "true"
// enable the filter, anything else leaves it off.
func isTruthy(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
