package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a GORM-backed IngredientRepository.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) ListAssigned(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("id IN (?)", r.db.Table("recipe_ingredients").Select("ingredient_id")).
		Order("name DESC").
		Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}
