package entities

import (
	"github.com/google/uuid"
)

type UserRecipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	ReadyInMinutes int       `json:"ready_in_minutes"`
	ImageURL       string    `json:"image_url,omitempty"`
	Vegan          bool      `json:"vegan"`
	Vegetarian     bool      `json:"vegetarian"`
	GlutenFree     bool      `json:"gluten_free"`
	Ingredients    string    `json:"ingredients" gorm:"type:text"`
	Instructions   string    `json:"instructions" gorm:"type:text"`
	Servings       int       `json:"servings"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type FamilyRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	FamilyMember string    `json:"family_member"`
	Occasion     string    `json:"occasion,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Ingredients  string    `json:"ingredients" gorm:"type:text"`
	Instructions string    `json:"instructions" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
