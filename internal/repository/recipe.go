package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
)

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a GORM-backed RecipeRepository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", ownerID).
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	// Auto-increment IDs track insertion order, so id DESC is
	// most-recently-created first.
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) SetImage(ctx context.Context, ownerID uuid.UUID, id uint, path string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("image", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
