package domain

import (
	"errors"
)

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessGetFavorites   = "success get favorites"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to get favorites"

	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrFavoriteNotFound = errors.New("recipe not in favorites")
)

type (
	AddFavoriteRequest struct {
		RecipeID int `json:"recipeId" validate:"required,min=1"`
	}
)
