package entities

import (
	"time"

	"github.com/google/uuid"
)

// Relation tables between a user and an externally catalogued recipe.
// Recipe ids are assigned by the catalog provider, so they are plain ints
// and carry no foreign key. Each table is unique on (user_id, recipe_id).

type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID  int       `gorm:"uniqueIndex:idx_like_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type RecipeFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  int       `gorm:"uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type RecipeWatch struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_watch_user_recipe" json:"user_id"`
	RecipeID int       `gorm:"uniqueIndex:idx_watch_user_recipe" json:"recipe_id"`
	ViewedAt time.Time `gorm:"type:timestamp" json:"viewed_at"`

	User *User `gorm:"foreignKey:UserID"`
}
