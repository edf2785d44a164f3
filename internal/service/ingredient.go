package service

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/repository"
)

// IngredientService handles user-scoped ingredient operations.
type IngredientService struct {
	ingredients repository.IngredientRepository
}

func NewIngredientService(ingredients repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredients: ingredients}
}

func (s *IngredientService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*models.Ingredient, error) {
	if name == "" {
		return nil, validationError("name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return nil, validationError("name must be at most 255 characters")
	}

	ingredient := &models.Ingredient{Name: name, UserID: ownerID}
	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]models.Ingredient, error) {
	if assignedOnly {
		return s.ingredients.ListAssigned(ctx, ownerID)
	}
	return s.ingredients.ListByOwner(ctx, ownerID)
}
