package service

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/repository"
)

// TagService handles user-scoped tag operations.
type TagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// Create validates and persists a tag owned by ownerID.
func (s *TagService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*models.Tag, error) {
	if name == "" {
		return nil, validationError("name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return nil, validationError("name must be at most 255 characters")
	}

	tag := &models.Tag{Name: name, UserID: ownerID}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// List returns the owner's tags, name descending. With assignedOnly set,
// only tags linked to at least one recipe are returned, each once.
func (s *TagService) List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]models.Tag, error) {
	if assignedOnly {
		return s.tags.ListAssigned(ctx, ownerID)
	}
	return s.tags.ListByOwner(ctx, ownerID)
}
