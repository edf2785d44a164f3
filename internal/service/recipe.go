package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/repository"
)

// CreateRecipeInput carries the validated fields for a new recipe.
// Tag and ingredient IDs reference existing records; they are not
// required to belong to the recipe's owner.
type CreateRecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         float64
	Link          string
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeService handles user-scoped recipe operations.
type RecipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
	}
}

// Create validates input, resolves associations, and persists a recipe
// owned by ownerID. Nothing is written when validation fails.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, in CreateRecipeInput) (*models.Recipe, error) {
	if in.Title == "" {
		return nil, validationError("title is required")
	}
	if in.TimeMinutes < 0 {
		return nil, validationError("time_minutes must not be negative")
	}
	if in.Price < 0 {
		return nil, validationError("price must not be negative")
	}

	tags, err := s.tags.FindByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(in.TagIDs) {
		return nil, validationError("one or more tags do not exist")
	}

	ingredients, err := s.ingredients.FindByIDs(ctx, in.IngredientIDs)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(in.IngredientIDs) {
		return nil, validationError("one or more ingredients do not exist")
	}

	recipe := &models.Recipe{
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		UserID:      ownerID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get retrieves one of the owner's recipes with associations loaded.
func (s *RecipeService) Get(ctx context.Context, ownerID uuid.UUID, id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// List returns the owner's recipes, most-recently-created first.
func (s *RecipeService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ctx, ownerID)
}

// SetImage records a stored image path on one of the owner's recipes.
func (s *RecipeService) SetImage(ctx context.Context, ownerID uuid.UUID, id uint, path string) error {
	err := s.recipes.SetImage(ctx, ownerID, id, path)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
