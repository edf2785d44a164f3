package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/forkful/recipe-api/internal/models"
)

// TagRepository provides owner-scoped access to tags. ListAssigned
// restricts the owner's tags to those referenced by at least one recipe,
// each tag appearing exactly once regardless of how many recipes link it.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error)
	ListAssigned(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
}

// IngredientRepository mirrors TagRepository for ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error)
	ListAssigned(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
}

// RecipeRepository provides owner-scoped access to recipes. Listings are
// ordered by creation sequence, newest first.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID, id uint) (*models.Recipe, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	SetImage(ctx context.Context, ownerID uuid.UUID, id uint, path string) error
}
