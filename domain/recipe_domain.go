package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessToggleLike      = "like state updated"
	MessageSuccessGetMainPage     = "success get main page"
	MessageSuccessGetLastSearch   = "success get last search"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedToggleLike      = "failed to update like state"
	MessageFailedGetMainPage     = "failed to get main page"
	MessageFailedGetLastSearch   = "no previous search found"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoLastSearch   = errors.New("no search stored for this session")
)

type (
	// RecipeDetails is the full catalog record enriched with the caller's
	// social state. Popularity holds the combined count (catalog + local).
	RecipeDetails struct {
		RecipeFull
		UserHasLiked bool `json:"userHasLiked"`
	}

	// EnrichedPreview is a catalog preview with the combined popularity and
	// like state folded in.
	EnrichedPreview struct {
		RecipePreview
		UserHasLiked bool `json:"userHasLiked"`
	}

	SearchRecipesRequest struct {
		Query       string `query:"query" validate:"required"`
		Number      int    `query:"number" validate:"omitempty,oneof=5 10 15"`
		Cuisine     string `query:"cuisine"`
		Diet        string `query:"diet"`
		Intolerance string `query:"intolerance"`
	}

	ToggleLikeRequest struct {
		// Liked is authoritative when present; nil means flip current state.
		Liked *bool `json:"liked"`
	}

	ToggleLikeResponse struct {
		Liked bool `json:"liked"`
	}

	MainPageResponse struct {
		RecentlyWatched []EnrichedPreview `json:"recentlyWatched"`
		Explore         []RecipePreview   `json:"explore"`
	}
)
