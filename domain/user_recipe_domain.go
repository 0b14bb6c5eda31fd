package domain

import (
	"errors"
)

var (
	MessageSuccessCreateUserRecipe = "recipe created"
	MessageSuccessGetUserRecipes   = "success get user recipes"
	MessageSuccessDeleteUserRecipe = "recipe deleted"
	MessageSuccessUploadImage      = "recipe image uploaded"

	MessageFailedCreateUserRecipe = "failed to create recipe"
	MessageFailedGetUserRecipes   = "failed to get user recipes"
	MessageFailedDeleteUserRecipe = "failed to delete recipe"
	MessageFailedUploadImage      = "failed to upload recipe image"

	ErrMissingRecipeFields = errors.New("title and servings are required")
)

type (
	CreateUserRecipeRequest struct {
		Title          string           `json:"title" validate:"required"`
		ReadyInMinutes int              `json:"readyInMinutes" validate:"omitempty,min=1"`
		Image          string           `json:"image"`
		Vegan          bool             `json:"vegan"`
		Vegetarian     bool             `json:"vegetarian"`
		GlutenFree     bool             `json:"glutenFree"`
		Ingredients    []IngredientItem `json:"ingredients"`
		Instructions   string           `json:"instructions"`
		Servings       int              `json:"servings" validate:"required,min=1"`
	}

	CreateUserRecipeResponse struct {
		ID string `json:"id"`
	}

	// UserRecipeSummary mirrors the catalog preview shape so both kinds of
	// recipe render through the same consumer components.
	UserRecipeSummary struct {
		ID             string `json:"id"`
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Image          string `json:"image"`
		Vegan          bool   `json:"vegan"`
		Vegetarian     bool   `json:"vegetarian"`
		GlutenFree     bool   `json:"glutenFree"`
	}

	UserRecipeDetails struct {
		UserRecipeSummary
		Ingredients  []IngredientItem `json:"ingredients"`
		Instructions string           `json:"instructions"`
		Servings     int              `json:"servings"`
	}
)
