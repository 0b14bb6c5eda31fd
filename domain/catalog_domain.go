package domain

import (
	"errors"
)

var (
	ErrMissingQuery         = errors.New("search query is required")
	ErrCatalogRequestFailed = errors.New("catalog request failed")
)

// Allowed page sizes for catalog search, fixed by the API contract.
var SearchLimits = []int{5, 10, 15}

type (
	// RecipePreview is the abbreviated catalog record. Field names are part
	// of the response contract and must not change.
	RecipePreview struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Image          string `json:"image"`
		Popularity     int    `json:"popularity"`
		Vegan          bool   `json:"vegan"`
		Vegetarian     bool   `json:"vegetarian"`
		GlutenFree     bool   `json:"glutenFree"`
	}

	// RecipeFull extends the preview with the fields only present on a
	// single-recipe fetch.
	RecipeFull struct {
		RecipePreview
		Ingredients  []IngredientItem `json:"ingredients"`
		Instructions string           `json:"instructions"`
		Servings     int              `json:"servings"`
	}

	IngredientItem struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	SearchFilters struct {
		Cuisine     string
		Diet        string
		Intolerance string
	}
)
