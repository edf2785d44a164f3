package models

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels recipes ("Vegan", "Dessert"). Each tag belongs to exactly
// one user; the owner is set at creation and never reassigned.
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"-"`
}

func (t Tag) String() string {
	return t.Name
}

// Ingredient is a user-scoped pantry item, same ownership shape as Tag.
type Ingredient struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"-"`
}

func (i Ingredient) String() string {
	return i.Name
}

// Recipe belongs to exactly one user. Associated tags and ingredients are
// not required to share the recipe's owner; ownership is enforced only on
// the recipe itself.
type Recipe struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	TimeMinutes int            `gorm:"not null" json:"time_minutes"`
	Price       float64        `gorm:"not null" json:"price"`
	Link        string         `gorm:"size:255" json:"link"`
	Image       string         `gorm:"size:255" json:"image"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"-"`
	Tags        []Tag          `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient   `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}

func (r Recipe) String() string {
	return r.Title
}

// RecipeImagePath builds the storage path for an uploaded recipe image.
// The original filename contributes only its extension; the uuid carries
// no meaning and is never reused.
func RecipeImagePath(id uuid.UUID, filename string) string {
	return fmt.Sprintf("uploads/recipe/%s%s", id, filepath.Ext(filename))
}
