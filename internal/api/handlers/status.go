package handlers

import (
	"RecipeHub/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the domain error taxonomy onto HTTP status codes so
// every handler renders failures the same way.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrInsufficientContent),
		errors.Is(err, domain.ErrNoLastSearch),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyFavorited),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrMissingQuery),
		errors.Is(err, domain.ErrMissingRecipeFields),
		errors.Is(err, domain.ErrMissingFamilyFields),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCatalogRequestFailed):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
