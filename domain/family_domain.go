package domain

import (
	"errors"
)

var (
	MessageSuccessCreateFamilyRecipe = "family recipe created"
	MessageSuccessGetFamilyRecipes   = "success get family recipes"
	MessageSuccessDeleteFamilyRecipe = "family recipe deleted"

	MessageFailedCreateFamilyRecipe = "failed to create family recipe"
	MessageFailedGetFamilyRecipes   = "failed to get family recipes"
	MessageFailedDeleteFamilyRecipe = "failed to delete family recipe"
	MessageInsufficientFamily       = "insufficient family recipes"

	// ErrInsufficientContent marks a collection below the minimum display
	// size. Not a storage failure: the rows exist, the product rule hides
	// them until there are at least three.
	ErrInsufficientContent = errors.New("not enough family recipes to display")

	ErrMissingFamilyFields = errors.New("title, family member, ingredients and instructions are required")
)

type (
	CreateFamilyRecipeRequest struct {
		Title        string           `json:"title" validate:"required"`
		FamilyMember string           `json:"familyMember" validate:"required"`
		Occasion     string           `json:"occasion"`
		Image        string           `json:"image"`
		Ingredients  []IngredientItem `json:"ingredients" validate:"required,min=1"`
		Instructions string           `json:"instructions" validate:"required"`
	}

	CreateFamilyRecipeResponse struct {
		ID string `json:"id"`
	}

	FamilyRecipeSummary struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		FamilyMember string `json:"familyMember"`
		Occasion     string `json:"occasion,omitempty"`
		Image        string `json:"image,omitempty"`
	}

	FamilyRecipeDetails struct {
		FamilyRecipeSummary
		Ingredients  []IngredientItem `json:"ingredients"`
		Instructions string           `json:"instructions"`
	}
)
