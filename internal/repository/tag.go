package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a GORM-backed TagRepository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) ListAssigned(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	// Semi-join against the association table: the linking recipe may
	// belong to any user, and a tag linked by several recipes matches once.
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("id IN (?)", r.db.Table("recipe_tags").Select("tag_id")).
		Order("name DESC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
